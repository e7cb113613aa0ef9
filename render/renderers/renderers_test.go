package renderers

import (
	"math"
	"testing"

	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/status"
	"github.com/lixenwraith/footbag/vmath"
)

const (
	testCols = 160
	testRows = 60
	testFPS  = 60
)

func newContext(g *engine.Game) render.RenderContext {
	return render.RenderContext{
		Game: g,
		View: render.NewViewport(testCols, testRows, g.Field()),
	}
}

func pixelAt(buf *render.RenderBuffer, view render.Viewport, p vmath.Vec2) visual.RGB {
	px := view.WorldToPixel(p)
	return buf.Pixel(int(math.Floor(px.X)), int(math.Floor(px.Y)))
}

// endRound drops the footbag through the floor while the leg reaches away
func endRound(t *testing.T, g *engine.Game) {
	t.Helper()
	b := g.Footbag()
	shift := vmath.V2(650, 595).Sub(b.Position)
	b.Position = b.Position.Add(shift)
	for i := range b.Points {
		b.Points[i] = b.Points[i].Add(shift)
	}
	b.Velocity = vmath.V2(0, 10)
	for i := 0; i < 10 && !g.IsOver(); i++ {
		g.Step(engine.Input{Target: vmath.V2(0, 330)})
	}
	if !g.IsOver() {
		t.Fatal("Expected round to end")
	}
}

func TestBackgroundFillsField(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)

	NewBackgroundRenderer().Render(ctx, buf)

	top, _ := g.Decor.BackgroundColors()
	if got := buf.Pixel(0, 0); got != top {
		t.Errorf("Expected top band %v, got %v", top, got)
	}
	if got := buf.Pixel(testCols-1, testRows*2-1); got == visual.RgbBlack {
		t.Error("Expected bottom-right pixel painted")
	}
}

func TestFootbagRendererHighlight(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)

	NewFootbagRenderer().Render(ctx, buf)

	bag := g.Footbag()
	want := bag.Color().Brighten(parameter.HighlightBoost)
	if got := pixelAt(buf, ctx.View, bag.Position); got != want {
		t.Errorf("Expected highlight %v at center, got %v", want, got)
	}

	edge := bag.Position.Add(vmath.V2(bag.Radius*0.8, 0))
	if got := pixelAt(buf, ctx.View, edge); got != bag.Color() {
		t.Errorf("Expected body colour %v near the rim, got %v", bag.Color(), got)
	}
}

func TestLegRendererJoints(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	g.Step(engine.Input{Target: vmath.V2(300, 450)})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)

	NewLegRenderer().Render(ctx, buf)

	leg := g.Leg()
	for name, p := range map[string]vmath.Vec2{"hip": leg.Hip, "knee": leg.Knee, "ankle": leg.Ankle} {
		if got := pixelAt(buf, ctx.View, p); got != visual.RgbWhite {
			t.Errorf("Expected white %s marker, got %v", name, got)
		}
	}

	thigh := leg.Thigh().Midpoint()
	if got := pixelAt(buf, ctx.View, thigh); got != visual.Palette[visual.ThighColorIndex] {
		t.Errorf("Expected thigh colour at thigh midpoint, got %v", got)
	}
}

func TestTitleRendererDrawsText(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)

	NewTitleRenderer().Render(ctx, buf)

	glyphs := 0
	for row := 0; row < testRows; row++ {
		for col := 0; col < testCols; col++ {
			if _, _, ok := buf.TextAt(col, row); ok {
				glyphs++
			}
		}
	}
	want := 0
	for _, r := range parameter.TitleText {
		if r != ' ' {
			want++
		}
	}
	if glyphs != want {
		t.Errorf("Expected %d title glyphs, got %d", want, glyphs)
	}
}

func TestHUDScoreAndMute(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	ctx := newContext(g)
	ctx.Muted = true
	buf := render.NewRenderBuffer(testCols, testRows)

	NewHUDRenderer(testFPS).Render(ctx, buf)

	if r, fg, ok := buf.TextAt(parameter.ScoreX, parameter.ScoreY); !ok || r != 'S' || fg != visual.RgbWhite {
		t.Errorf("Expected white score label, got %q %v %v", r, fg, ok)
	}
	mx := testCols - len(parameter.TextMuted) - parameter.ScoreX
	if r, _, _ := buf.TextAt(mx, parameter.ScoreY); r != 'm' {
		t.Errorf("Expected mute indicator at column %d, got %q", mx, r)
	}
}

func TestHUDPopDecays(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)
	hud := NewHUDRenderer(testFPS)

	ctx.Events = []engine.GameEvent{{Type: engine.EventKick}}
	hud.Render(ctx, buf)
	if hud.Pop() < 0.5 {
		t.Fatalf("Expected pop near 1 after a kick, got %v", hud.Pop())
	}

	ctx.Events = nil
	for i := 0; i < 5*testFPS; i++ {
		hud.Render(ctx, buf)
	}
	if math.Abs(hud.Pop()) > 0.01 {
		t.Errorf("Expected pop to settle, got %v", hud.Pop())
	}
}

func TestGameOverSlidesIn(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 1})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)
	over := NewGameOverRenderer(testFPS)

	over.Render(ctx, buf)
	if over.Offset() != 0 {
		t.Errorf("Expected no panel while playing, got offset %v", over.Offset())
	}

	endRound(t, g)
	over.Render(ctx, buf)
	if over.Offset() > -float64(testRows)/4 {
		t.Errorf("Expected panel to start above rest, got %v", over.Offset())
	}

	for i := 0; i < 5*testFPS; i++ {
		buf.Clear(visual.RgbBlack)
		over.Render(ctx, buf)
	}
	if math.Abs(over.Offset()) > 0.01 {
		t.Errorf("Expected panel at rest, got %v", over.Offset())
	}

	// At rest the score line sits on the field's vertical center
	_, center := ctx.View.WorldToCell(vmath.V2(0, g.Field().Height/2))
	found := false
	for col := 0; col < testCols; col++ {
		if r, _, ok := buf.TextAt(col, center); ok && r == 'F' {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected final score line on row %d", center)
	}
}

func TestDebugToggle(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyScore).Store(7)
	d := NewDebugRenderer(reg)

	if d.IsVisible() {
		t.Error("Expected debug hidden by default")
	}
	d.Toggle()
	if !d.IsVisible() {
		t.Error("Expected debug visible after toggle")
	}
	d.SetVisible(false)
	if d.IsVisible() {
		t.Error("Expected debug hidden after SetVisible(false)")
	}

	g := engine.NewGame(engine.Options{Seed: 1, Status: reg})
	ctx := newContext(g)
	buf := render.NewRenderBuffer(testCols, testRows)
	d.Render(ctx, buf)

	lines := reg.Lines()
	row := testRows - parameter.DebugMarginY - len(lines)
	if r, _, ok := buf.TextAt(parameter.DebugMarginX, row); !ok || r != rune(lines[0][0]) {
		t.Errorf("Expected first metric line at row %d, got %q", row, r)
	}
}

func TestFullFrameSmoke(t *testing.T) {
	g := engine.NewGame(engine.Options{Seed: 42, Field: physics.DefaultField()})
	buf := render.NewRenderBuffer(testCols, testRows)
	layers := []render.SystemRenderer{
		NewBackgroundRenderer(),
		NewTitleRenderer(),
		NewLegRenderer(),
		NewFootbagRenderer(),
		NewHUDRenderer(testFPS),
		NewGameOverRenderer(testFPS),
		NewDebugRenderer(status.NewRegistry()),
	}

	for i := 0; i < 600; i++ {
		g.Step(engine.Input{Target: vmath.V2(400, 500)})
		ctx := newContext(g)
		ctx.Events = g.Events()
		buf.Clear(visual.RgbBlack)
		for _, l := range layers {
			l.Render(ctx, buf)
		}
	}
}
