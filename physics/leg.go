package physics

import (
	"math"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/vmath"
)

// Limb identifies one leg segment
type Limb uint8

const (
	LimbThigh Limb = iota
	LimbCalf
	LimbFoot
)

// Segment is one limb as a line with a drawn width
type Segment struct {
	Limb  Limb
	Start vmath.Vec2
	End   vmath.Vec2
	Width float64
}

// Midpoint returns the segment center
func (s Segment) Midpoint() vmath.Vec2 {
	return vmath.Midpoint(s.Start, s.End)
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Leg is a two-bone IK chain (hip→knee→ankle) with a rigid horizontal foot
// The hip never moves; knee and ankle are re-solved from the target every tick
// with the knee always bending upward in screen space
type Leg struct {
	field Field

	Hip   vmath.Vec2
	Knee  vmath.Vec2
	Ankle vmath.Vec2

	ThighLength float64
	CalfLength  float64
	FootLength  float64
}

// NewLeg anchors the hip at the bottom-center of the field
func NewLeg(field Field) *Leg {
	return NewLegAt(vmath.V2(field.CenterX(), field.Height-parameter.HipHeight), field)
}

// NewLegAt anchors the hip at an explicit point
func NewLegAt(hip vmath.Vec2, field Field) *Leg {
	return &Leg{
		field:       field,
		Hip:         hip,
		Knee:        vmath.V2(hip.X, field.Height-parameter.KneeRestHeight),
		Ankle:       vmath.V2(hip.X, field.Height-parameter.AnkleRestHeight),
		ThighLength: parameter.ThighLength,
		CalfLength:  parameter.CalfLength,
		FootLength:  parameter.FootLength,
	}
}

// MaxExtension is the reach clamp radius around the hip
func (l *Leg) MaxExtension() float64 {
	return l.ThighLength + l.CalfLength - parameter.ReachMargin
}

// Update moves the ankle toward target and re-solves the knee
func (l *Leg) Update(target vmath.Vec2) {
	target.Y = math.Min(target.Y, l.field.Height-parameter.AnkleFloorClearance)

	reach := target.Sub(l.Hip)
	maxExt := l.MaxExtension()
	if reach.Len() > maxExt {
		reach = reach.ScaleToLength(maxExt)
		l.Ankle = l.Hip.Add(reach)
	} else {
		l.Ankle = target
	}

	reach = l.Ankle.Sub(l.Hip)
	dist := reach.Len()
	if dist < vmath.Epsilon {
		l.Knee = l.Hip.Add(vmath.V2(l.ThighLength/2, 0))
		return
	}

	a, b, c := l.ThighLength, dist, l.CalfLength
	cosAngle := (a*a + b*b - c*c) / (2 * a * b)
	cosAngle = vmath.Clamp(cosAngle, -parameter.KneeCosineLimit, parameter.KneeCosineLimit)
	angle := math.Acos(cosAngle)

	dir := reach.Scale(1 / dist)

	// Bend side: the perpendicular that points up (negative y)
	perp := dir.Perpendicular()
	if perp.Y > 0 {
		perp = perp.Neg()
	}
	sign := -1.0
	if dir.Cross(perp) > 0 {
		sign = 1.0
	}

	thighDir := dir.Rotate(angle * sign)
	l.Knee = l.Hip.Add(thighDir.Scale(l.ThighLength))
}

// FootEnd returns the toe point; the foot is always horizontal
func (l *Leg) FootEnd() vmath.Vec2 {
	return l.Ankle.Add(vmath.V2(l.FootLength, 0))
}

// Thigh returns the hip–knee segment
func (l *Leg) Thigh() Segment {
	return Segment{Limb: LimbThigh, Start: l.Hip, End: l.Knee, Width: parameter.ThighWidth}
}

// Calf returns the knee–ankle segment
func (l *Leg) Calf() Segment {
	return Segment{Limb: LimbCalf, Start: l.Knee, End: l.Ankle, Width: parameter.CalfWidth}
}

// Foot returns the ankle–toe segment
func (l *Leg) Foot() Segment {
	return Segment{Limb: LimbFoot, Start: l.Ankle, End: l.FootEnd(), Width: parameter.FootHeight}
}

// Segments returns thigh, calf and foot in draw order
func (l *Leg) Segments() [3]Segment {
	return [3]Segment{l.Thigh(), l.Calf(), l.Foot()}
}
