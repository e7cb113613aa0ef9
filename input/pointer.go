package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/footbag/vmath"
)

// CellMapper converts a terminal cell to the world point under it
type CellMapper interface {
	CellToWorld(x, y int) vmath.Vec2
}

// Pointer tracks the mouse in world coordinates
// Sample returns the motion since the previous sample, giving one relative
// velocity per tick
type Pointer struct {
	mapper   CellMapper
	position vmath.Vec2
	sampled  vmath.Vec2
}

// NewPointer creates a tracker resting at start until the first mouse event
func NewPointer(mapper CellMapper, start vmath.Vec2) *Pointer {
	return &Pointer{mapper: mapper, position: start, sampled: start}
}

// HandleMouse records the cell under the mouse
func (p *Pointer) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p.MoveToCell(x, y)
}

// MoveToCell records a pointer position in cells
func (p *Pointer) MoveToCell(x, y int) {
	p.position = p.mapper.CellToWorld(x, y)
}

// SetMapper swaps the cell mapping after a resize
func (p *Pointer) SetMapper(mapper CellMapper) {
	p.mapper = mapper
}

// Position returns the latest world position
func (p *Pointer) Position() vmath.Vec2 {
	return p.position
}

// Sample returns the current position and the motion since the last Sample
func (p *Pointer) Sample() (target, velocity vmath.Vec2) {
	velocity = p.position.Sub(p.sampled)
	p.sampled = p.position
	return p.position, velocity
}
