package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/vmath"
)

// Contacts records which limbs struck the footbag in one tick
type Contacts struct {
	Foot bool
	Calf bool
}

// Count returns the number of score events
func (c Contacts) Count() int {
	n := 0
	if c.Foot {
		n++
	}
	if c.Calf {
		n++
	}
	return n
}

// Any reports whether either limb made contact
func (c Contacts) Any() bool {
	return c.Foot || c.Calf
}

// bounceFallback is used when the body center sits exactly on the contact point
var bounceFallback = vmath.V2(0, -1)

// ResolveContacts tests foot then calf against the footbag and applies an
// impulse for each hit. Both checks always run; when both hit, the calf
// impulse is applied last and its velocity wins
func ResolveContacts(leg *Leg, bag *Footbag, pointerVelocity vmath.Vec2) Contacts {
	var c Contacts

	if FootTouches(leg, bag) {
		strike(bag, leg.Foot().Midpoint(), FootProfile.Speed(pointerVelocity.Len()), &FootProfile)
		c.Foot = true
	}

	if CalfTouches(leg, bag) {
		strike(bag, leg.Calf().Midpoint(), CalfProfile.Speed(0), &CalfProfile)
		c.Calf = true
	}

	return c
}

func strike(bag *Footbag, from vmath.Vec2, speed float64, profile *ImpactProfile) {
	dir, ok := bag.Position.Sub(from).Normalize()
	if !ok {
		dir = bounceFallback
	}
	bag.ApplyImpulse(dir, speed, profile.Duration, profile.Spread)
}

// FootBox returns the inflated foot rectangle used for the broad-phase test
func FootBox(leg *Leg) box2d.B2AABB {
	half := parameter.FootInflate / 2
	top := leg.Ankle.Y - parameter.FootHeight/2
	return box2d.B2AABB{
		LowerBound: box2d.MakeB2Vec2(leg.Ankle.X-half, top-half),
		UpperBound: box2d.MakeB2Vec2(leg.Ankle.X+leg.FootLength+half, top+parameter.FootHeight+half),
	}
}

// FootTouches reports whether the foot rectangle overlaps the footbag bounds
func FootTouches(leg *Leg, bag *Footbag) bool {
	return box2d.B2TestOverlapBoundingBoxes(FootBox(leg), bag.BoundingBox())
}

// CalfTouches reports whether any boundary point lies within contact range of the calf
// A zero-length calf never touches
func CalfTouches(leg *Leg, bag *Footbag) bool {
	calf := leg.Calf()
	for _, p := range bag.Points {
		d, ok := vmath.PointSegmentDistance(p, calf.Start, calf.End)
		if !ok {
			return false
		}
		if d <= CalfProfile.ContactRange {
			return true
		}
	}
	return false
}
