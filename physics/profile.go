package physics

import "github.com/lixenwraith/footbag/parameter"

// ImpactProfile defines how a limb strike launches the footbag
// Profiles are pre-defined as package variables, one per striking limb
type ImpactProfile struct {
	BaseSpeed    float64 // Added to scaled pointer speed
	MinSpeed     float64 // Floor of the resulting speed
	PointerGain  float64 // Pointer velocity multiplier (0 = fixed speed)
	Duration     int     // Impact timer ticks
	Spread       float64 // Per-axis point velocity jitter
	ContactRange float64 // Narrow-phase distance threshold (calf only)
}

var (
	// FootProfile scales with how fast the pointer is moving
	FootProfile = ImpactProfile{
		BaseSpeed:   parameter.FootBaseSpeed,
		MinSpeed:    parameter.FootMinSpeed,
		PointerGain: parameter.FootPointerGain,
		Duration:    parameter.FootImpactDuration,
		Spread:      parameter.StrikeSpread,
	}

	// CalfProfile is a fixed-speed deflection
	CalfProfile = ImpactProfile{
		BaseSpeed:    parameter.CalfSpeed,
		MinSpeed:     parameter.CalfSpeed,
		Duration:     parameter.CalfImpactDuration,
		Spread:       parameter.StrikeSpread,
		ContactRange: parameter.CalfWidth/2 + parameter.CalfContactBuffer,
	}
)

// Speed returns the bounce speed for the given pointer velocity magnitude
func (p *ImpactProfile) Speed(pointerSpeed float64) float64 {
	s := pointerSpeed*p.PointerGain + p.BaseSpeed
	if s < p.MinSpeed {
		return p.MinSpeed
	}
	return s
}
