package physics

import "github.com/lixenwraith/footbag/parameter"

// Field is the play-field rectangle [0,Width]×[0,Height]
// Walls and ceiling reflect the footbag; Height is also the floor line
type Field struct {
	Width, Height float64
}

// DefaultField returns the standard 800×600 field
func DefaultField() Field {
	return Field{Width: parameter.FieldWidth, Height: parameter.FieldHeight}
}

// CenterX returns the horizontal midpoint, truncated to a whole unit
func (f Field) CenterX() float64 {
	return float64(int(f.Width) / 2)
}

// CenterY returns the vertical midpoint, truncated to a whole unit
func (f Field) CenterY() float64 {
	return float64(int(f.Height) / 2)
}
