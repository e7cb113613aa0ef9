// Package input turns terminal events into game intents and pointer samples.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // Esc, q, Ctrl+C
	IntentRestart     // Space after game over
	IntentToggleMute  // m
	IntentToggleDebug // F1, d
)

// String returns the action name bound in config files
func (t IntentType) String() string {
	for name, it := range actionRegistry {
		if it == t && name != "none" {
			return name
		}
	}
	return "none"
}
