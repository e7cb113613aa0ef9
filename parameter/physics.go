package parameter

// Play Field
const (
	// FieldWidth is the default play-field width in world units
	FieldWidth = 800

	// FieldHeight is the default play-field height in world units, the floor line
	FieldHeight = 600
)

// Footbag Body
const (
	// FootbagRadius is the rest radius of the blob in world units
	FootbagRadius = 15.0

	// FootbagPointCount is the number of boundary points around the silhouette
	FootbagPointCount = 12

	// FootbagGravity is added to vertical velocity every tick
	FootbagGravity = 0.2

	// FootbagLaunchSpeedY is the initial upward velocity at spawn
	FootbagLaunchSpeedY = -6.0

	// FootbagLaunchSpreadX bounds the random initial horizontal velocity (±)
	FootbagLaunchSpreadX = 2.0
)

// Footbag Boundary Response
const (
	// WallRestitution scales horizontal velocity on a side wall bounce
	WallRestitution = 0.8

	// CeilingRestitution scales vertical velocity on a ceiling bounce
	CeilingRestitution = 0.7
)

// Footbag Soft Body
const (
	// FootbagElasticity pulls each point toward its rest offset
	FootbagElasticity = 0.3

	// FootbagDamping multiplies point velocity every tick, must stay in (0,1)
	FootbagDamping = 0.85

	// FootbagVelocityDeform stretches points opposite the direction of travel
	FootbagVelocityDeform = 0.2

	// FootbagImpactDuration is the impact timer reset value after a wall or ceiling hit
	FootbagImpactDuration = 10

	// FootbagImpactCompression is the peak inward push on the impacted side
	FootbagImpactCompression = 7.0
)

// Leg Geometry
const (
	ThighLength = 160.0
	CalfLength  = 140.0
	FootLength  = 80.0

	ThighWidth = 25.0
	CalfWidth  = 20.0
	FootHeight = 15.0

	// HipHeight is the hip anchor distance above the floor
	HipHeight = 270.0

	// KneeRestHeight and AnkleRestHeight place the joints before the first update
	KneeRestHeight  = 150.0
	AnkleRestHeight = 50.0

	// ReachMargin is subtracted from thigh+calf to keep the knee from locking straight
	ReachMargin = 40.0

	// AnkleFloorClearance keeps the ankle target above the floor
	AnkleFloorClearance = 20.0

	// KneeCosineLimit bounds the law-of-cosines argument against float drift
	KneeCosineLimit = 0.99
)

// Strike Response
const (
	// FootInflate grows the foot rectangle on each axis before the overlap test
	FootInflate = 5.0

	// FootMinSpeed is the floor of the foot bounce speed
	FootMinSpeed = 6.0

	// FootBaseSpeed is added to the scaled pointer speed
	FootBaseSpeed = 4.0

	// FootPointerGain scales pointer motion into bounce speed
	FootPointerGain = 0.15

	// FootImpactDuration is the impact timer for a foot strike
	FootImpactDuration = 10

	// CalfContactBuffer extends the calf half-width for the point distance test
	CalfContactBuffer = 5.0

	// CalfSpeed is the fixed calf bounce speed
	CalfSpeed = 6.0

	// CalfImpactDuration is the impact timer for a calf strike
	CalfImpactDuration = 8

	// StrikeSpread bounds the per-axis random kick added to each point velocity
	StrikeSpread = 1.0
)
