package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/footbag/config"
	"github.com/lixenwraith/footbag/input"
)

// inTempDir runs the test from an empty directory and restores the logger
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() { log.SetOutput(io.Discard) })
	return dir
}

func expectDiscarded(t *testing.T, logFile *os.File) {
	t.Helper()
	if logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file")
	}
	if w := log.Writer(); w != io.Discard {
		t.Errorf("Expected io.Discard, got %v", w)
	}
}

func writeOversizedLog(t *testing.T) string {
	t.Helper()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestSetupLoggingOff(t *testing.T) {
	inTempDir(t)
	expectDiscarded(t, setupLogging(false))
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("Expected no %s directory, got err=%v", logDir, err)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file")
	}
	defer logFile.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Fatalf("Expected a file writer, got %v", w)
	}

	log.Println("kick at 12")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "kick at 12") {
		t.Errorf("Expected logged line in file, got %q", data)
	}
}

func TestSetupLoggingRotates(t *testing.T) {
	inTempDir(t)
	stamp := time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)
	logClock = func() time.Time { return stamp }
	t.Cleanup(func() { logClock = time.Now })

	path := writeOversizedLog(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file")
	}
	defer logFile.Close()

	rotated := filepath.Join(logDir, "footbag-20250304-050607.log")
	info, err := os.Stat(rotated)
	if err != nil {
		t.Fatalf("Expected rotated file %s, got %v", rotated, err)
	}
	if info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated size %d, got %d", maxLogSize+1, info.Size())
	}

	info, err = os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file, got %d bytes", info.Size())
	}
}

func TestSetupLoggingFallsBackToDiscard(t *testing.T) {
	stamp := time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)
	logClock = func() time.Time { return stamp }
	t.Cleanup(func() { logClock = time.Now })

	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{"log dir is a file", func(t *testing.T) {
			if err := os.WriteFile(logDir, []byte("x"), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}},
		{"rotation target blocked", func(t *testing.T) {
			writeOversizedLog(t)
			blocked := filepath.Join(logDir, "footbag-20250304-050607.log")
			if err := os.MkdirAll(filepath.Join(blocked, "keep"), 0755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		}},
		{"log path is a directory", func(t *testing.T) {
			if err := os.MkdirAll(filepath.Join(logDir, logFileName), 0755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			log.SetOutput(os.Stderr)
			tt.setup(t)
			expectDiscarded(t, setupLogging(true))
		})
	}
}

func TestRealMainClosesLogOnRunError(t *testing.T) {
	inTempDir(t)
	*debugFlag = true
	t.Cleanup(func() { *debugFlag = false })

	code := realMain(func(*config.Config, *input.KeyTable) error {
		log.Println("before exit")
		return errors.New("screen gone")
	})
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}

	// Writes after return hit a closed file
	log.Println("after exit")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "before exit") || !strings.Contains(text, "exit: screen gone") {
		t.Errorf("Expected run output flushed to log, got %q", text)
	}
	if strings.Contains(text, "after exit") {
		t.Errorf("Expected log file closed on return, got %q", text)
	}
}

func TestRealMainWriteConfig(t *testing.T) {
	dir := inTempDir(t)
	out := filepath.Join(dir, "footbag.toml")
	*writeConfigFlag = out
	t.Cleanup(func() { *writeConfigFlag = "" })

	called := false
	code := realMain(func(*config.Config, *input.KeyTable) error {
		called = true
		return nil
	})
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if called {
		t.Error("Expected the game not to start when writing config")
	}
	if _, err := config.Load(out); err != nil {
		t.Errorf("Expected written config to load, got %v", err)
	}
}
