package physics

import (
	"math"

	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/vmath"
)

// WallHit describes a wall or ceiling contact resolved during one Update
type WallHit struct {
	Hit    bool
	Normal vmath.Vec2 // Outward from the surface, into the field
}

// Footbag is the soft-body projectile: a center mass carrying a ring of
// spring-damped boundary points whose positions form the silhouette
type Footbag struct {
	field Field
	rng   *vmath.FastRand

	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64

	// Points, rest and pointVel are index-aligned
	// rest never changes after construction
	Points   []vmath.Vec2
	rest     []vmath.Vec2
	pointVel []vmath.Vec2

	lastImpact  vmath.Vec2
	hasImpact   bool
	impactTimer int

	ColorIndex int
	colorTimer int
}

// NewFootbag creates a footbag at the field center with a random upward launch
// rng is the only source of randomness and is retained for strike jitter
func NewFootbag(field Field, rng *vmath.FastRand) *Footbag {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	n := parameter.FootbagPointCount
	b := &Footbag{
		field:    field,
		rng:      rng,
		Position: vmath.V2(field.CenterX(), field.CenterY()),
		Radius:   parameter.FootbagRadius,
		Points:   make([]vmath.Vec2, n),
		rest:     make([]vmath.Vec2, n),
		pointVel: make([]vmath.Vec2, n),
	}
	b.Velocity = vmath.V2(
		rng.Uniform(-parameter.FootbagLaunchSpreadX, parameter.FootbagLaunchSpreadX),
		parameter.FootbagLaunchSpeedY,
	)

	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		sin, cos := math.Sincos(angle)
		b.rest[i] = vmath.V2(cos*b.Radius, sin*b.Radius)
		b.Points[i] = b.Position.Add(b.rest[i])
	}
	return b
}

// RestOffset returns the undeformed offset of point i from the center
func (b *Footbag) RestOffset(i int) vmath.Vec2 {
	return b.rest[i]
}

// PointVelocity returns the current velocity of boundary point i
func (b *Footbag) PointVelocity(i int) vmath.Vec2 {
	return b.pointVel[i]
}

// ImpactTimer returns the remaining ticks of impact deformation
func (b *Footbag) ImpactTimer() int {
	return b.impactTimer
}

// LastImpact returns the normal of the most recent impact and whether one is active
func (b *Footbag) LastImpact() (vmath.Vec2, bool) {
	return b.lastImpact, b.hasImpact
}

// Color returns the current palette colour
func (b *Footbag) Color() visual.RGB {
	return visual.PaletteAt(b.ColorIndex)
}

// Update advances the body one tick
func (b *Footbag) Update() WallHit {
	b.Velocity.Y += parameter.FootbagGravity

	prev := b.Position
	b.Position = b.Position.Add(b.Velocity)

	hit := b.resolveBounds()

	if hit.Hit {
		b.lastImpact = hit.Normal
		b.hasImpact = true
		b.impactTimer = parameter.FootbagImpactDuration
	} else if b.impactTimer > 0 {
		b.impactTimer--
		if b.impactTimer == 0 {
			b.hasImpact = false
			b.lastImpact = vmath.Vec2{}
		}
	}

	delta := b.Position.Sub(prev)
	b.updatePoints(delta)
	b.advanceColor()

	return hit
}

// resolveBounds clamps the center inside the side walls and ceiling
// The floor is left open; falling through it is the loss condition
func (b *Footbag) resolveBounds() WallHit {
	var hit WallHit

	if b.Position.X-b.Radius < 0 {
		b.Position.X = b.Radius
		b.Velocity.X *= -parameter.WallRestitution
		hit = WallHit{Hit: true, Normal: vmath.V2(1, 0)}
	} else if b.Position.X+b.Radius > b.field.Width {
		b.Position.X = b.field.Width - b.Radius
		b.Velocity.X *= -parameter.WallRestitution
		hit = WallHit{Hit: true, Normal: vmath.V2(-1, 0)}
	}

	// Ceiling overrides a same-tick side wall normal
	if b.Position.Y-b.Radius < 0 {
		b.Position.Y = b.Radius
		b.Velocity.Y *= -parameter.CeilingRestitution
		hit = WallHit{Hit: true, Normal: vmath.V2(0, 1)}
	}

	return hit
}

func (b *Footbag) updatePoints(delta vmath.Vec2) {
	velDeform := b.Velocity.Scale(-parameter.FootbagVelocityDeform)

	var impactForce vmath.Vec2
	impacting := b.hasImpact && b.impactTimer > 0
	if impacting {
		strength := float64(b.impactTimer) / parameter.FootbagImpactDuration
		impactForce = b.lastImpact.Scale(strength * -parameter.FootbagImpactCompression)
	}

	for i := range b.Points {
		b.Points[i] = b.Points[i].Add(delta)

		rel := b.Points[i].Sub(b.Position)
		target := b.Position.Add(b.rest[i])
		force := target.Sub(b.Points[i]).Scale(parameter.FootbagElasticity)

		// One-sided: only points facing the impact normal are compressed
		if impacting {
			if d := rel.Dot(b.lastImpact); d > 0 {
				force = force.Add(impactForce.Scale(d / b.Radius))
			}
		}

		v := b.pointVel[i].Add(force).Add(velDeform)
		b.pointVel[i] = v.Scale(parameter.FootbagDamping)
		b.Points[i] = b.Points[i].Add(b.pointVel[i])
	}
}

func (b *Footbag) advanceColor() {
	b.colorTimer++
	if b.colorTimer > parameter.FootbagColorTicks {
		b.colorTimer = 0
		b.ColorIndex = (b.ColorIndex + 1) % len(visual.Palette)
	}
}

// ApplyImpulse replaces the center velocity with direction*speed, starts an
// impact deformation facing back along direction, and jitters every point
// velocity by up to ±spread per axis
func (b *Footbag) ApplyImpulse(direction vmath.Vec2, speed float64, duration int, spread float64) {
	b.Velocity = direction.Scale(speed)
	b.lastImpact = direction.Neg()
	b.hasImpact = true
	b.impactTimer = duration

	for i := range b.pointVel {
		jx := b.rng.Uniform(-spread, spread)
		jy := b.rng.Uniform(-spread, spread)
		b.pointVel[i] = b.pointVel[i].Add(vmath.V2(jx, jy))
	}
}

// BoundingBox returns the axis-aligned box enclosing all boundary points
func (b *Footbag) BoundingBox() box2d.B2AABB {
	lo := b.Points[0]
	hi := b.Points[0]
	for _, p := range b.Points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return box2d.B2AABB{
		LowerBound: box2d.MakeB2Vec2(lo.X, lo.Y),
		UpperBound: box2d.MakeB2Vec2(hi.X, hi.Y),
	}
}

// IsBelowFloor reports whether any boundary point has dropped past floorY
func (b *Footbag) IsBelowFloor(floorY float64) bool {
	for _, p := range b.Points {
		if p.Y > floorY {
			return true
		}
	}
	return false
}

// Speed returns the center speed
func (b *Footbag) Speed() float64 {
	return b.Velocity.Len()
}
