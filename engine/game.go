package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/status"
	"github.com/lixenwraith/footbag/vmath"
)

// Options configures a session
type Options struct {
	// Field defaults to physics.DefaultField when zero
	Field physics.Field

	// Seed drives every random draw in the session; 0 is treated as 1
	Seed uint64

	// Status receives session metrics; a private registry is used when nil
	Status *status.Registry
}

// Input is the external state sampled once per tick
type Input struct {
	// Target is where the ankle should go, world units
	Target vmath.Vec2

	// PointerVelocity is the pointer's motion since the previous tick, world units
	PointerVelocity vmath.Vec2
}

// TickResult summarizes what one Step did
type TickResult struct {
	Contacts physics.Contacts
	Wall     physics.WallHit
	Scored   int
	GameOver bool // True only on the tick the round ends
}

// Game owns one footbag, one leg, and the score of the current round
type Game struct {
	field  physics.Field
	rng    *vmath.FastRand
	bag    *physics.Footbag
	leg    *physics.Leg
	events *EventQueue

	// Decor persists across rounds
	Decor Decor

	score int
	over  bool
	tick  uint64

	// Cached metric pointers
	statTicks *atomic.Int64
	statScore *atomic.Int64
	statFoot  *atomic.Int64
	statCalf  *atomic.Int64
	statWall  *atomic.Int64
	statGames *atomic.Int64
	statSpeed *status.AtomicFloat
	statY     *status.AtomicFloat
}

// NewGame creates a session and starts the first round
func NewGame(opts Options) *Game {
	field := opts.Field
	if field.Width <= 0 || field.Height <= 0 {
		field = physics.DefaultField()
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		field:  field,
		rng:    vmath.NewFastRand(opts.Seed),
		events: NewEventQueue(),

		statTicks: reg.Ints.Get(status.KeyTicks),
		statScore: reg.Ints.Get(status.KeyScore),
		statFoot:  reg.Ints.Get(status.KeyFootKicks),
		statCalf:  reg.Ints.Get(status.KeyCalfKicks),
		statWall:  reg.Ints.Get(status.KeyWallHits),
		statGames: reg.Ints.Get(status.KeyGames),
		statSpeed: reg.Floats.Get(status.KeyBagSpeed),
		statY:     reg.Floats.Get(status.KeyBagHeight),
	}
	g.startRound()
	return g
}

// Reset discards the current round and starts a fresh one
// The random stream continues, so successive rounds launch differently
func (g *Game) Reset() {
	g.startRound()
	g.events.Push(GameEvent{Type: EventReset, Tick: g.tick})
}

func (g *Game) startRound() {
	g.bag = physics.NewFootbag(g.field, g.rng)
	g.leg = physics.NewLeg(g.field)
	g.score = 0
	g.over = false
	g.statScore.Store(0)
	g.statGames.Add(1)
}

// Step advances the session one tick
// Stepping a finished round is a no-op and returns the zero TickResult
func (g *Game) Step(in Input) TickResult {
	var res TickResult
	if g.over {
		return res
	}
	g.tick++
	g.statTicks.Add(1)

	g.leg.Update(in.Target)

	res.Contacts = physics.ResolveContacts(g.leg, g.bag, in.PointerVelocity)
	if res.Contacts.Foot {
		g.kick(physics.LimbFoot)
		g.statFoot.Add(1)
	}
	if res.Contacts.Calf {
		g.kick(physics.LimbCalf)
		g.statCalf.Add(1)
	}
	res.Scored = res.Contacts.Count()

	res.Wall = g.bag.Update()
	if res.Wall.Hit {
		g.statWall.Add(1)
		g.events.Push(GameEvent{Type: EventWallBounce, Tick: g.tick, Normal: res.Wall.Normal})
	}

	if g.bag.IsBelowFloor(g.field.Height) {
		g.over = true
		res.GameOver = true
		g.events.Push(GameEvent{Type: EventGameOver, Tick: g.tick, Score: g.score})
	}

	g.Decor.Advance()

	g.statSpeed.Set(g.bag.Speed())
	g.statY.Set(g.bag.Position.Y)
	return res
}

func (g *Game) kick(limb physics.Limb) {
	g.score++
	g.statScore.Store(int64(g.score))
	g.events.Push(GameEvent{Type: EventKick, Tick: g.tick, Limb: limb, Score: g.score})
}

// AdvanceDecor runs only the cosmetic timers, used while the game-over screen is up
func (g *Game) AdvanceDecor() {
	g.Decor.Advance()
}

// Events drains the events produced since the last call
func (g *Game) Events() []GameEvent {
	return g.events.Consume()
}

// Score returns the current round's score
func (g *Game) Score() int { return g.score }

// IsOver reports whether the footbag has been lost
func (g *Game) IsOver() bool { return g.over }

// Tick returns the number of ticks stepped over the session lifetime
func (g *Game) Tick() uint64 { return g.tick }

// Field returns the play field
func (g *Game) Field() physics.Field { return g.field }

// Footbag returns the live footbag for rendering
func (g *Game) Footbag() *physics.Footbag { return g.bag }

// Leg returns the live leg for rendering
func (g *Game) Leg() *physics.Leg { return g.leg }
