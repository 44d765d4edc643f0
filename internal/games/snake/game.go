package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/rng"
)

// Defaults used when a Config leaves a field unset.
const (
	DefaultWidth    = 30
	DefaultHeight   = 20
	DefaultTickRate = 10 // Ticks per second
)

// Phase is the lifecycle state of a session.
type Phase string

const (
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseOver    Phase = "over"
)

// Rules holds the tunable constants of the tick engine.
type Rules struct {
	MaxItems        int     // Spawning stops at this many live items
	SpawnChance     float64 // Per-tick probability of a spawn attempt
	ObstacleDivisor int     // One obstacle per this many cells in WallObstacles
	SlowFactor      float64 // Tick rate multiplier while slowed
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		MaxItems:        3,
		SpawnChance:     0.3,
		ObstacleDivisor: 20,
		SlowFactor:      0.6,
	}
}

// Config describes a new session.
type Config struct {
	Width    int
	Height   int
	WallMode core.WallMode
	TickRate int   // Base ticks per second
	Seed     int64 // Seeds the session's private RNG
	Rules    Rules // Zero value means DefaultRules
}

// DefaultConfig returns a 30x20 classic session at 10 ticks per second.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		WallMode: core.WallNormal,
		TickRate: DefaultTickRate,
		Rules:    DefaultRules(),
	}
}

// normalize fills unset or unusable fields with defaults.
func (c Config) normalize() Config {
	if c.Width < MinWidth {
		c.Width = DefaultWidth
	}
	if c.Height < 1 {
		c.Height = DefaultHeight
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Rules == (Rules{}) {
		c.Rules = DefaultRules()
	}
	c.Rules.MaxItems = max(c.Rules.MaxItems, 0)
	c.Rules.SpawnChance = min(max(c.Rules.SpawnChance, 0), 1)
	if c.Rules.ObstacleDivisor <= 0 {
		c.Rules.ObstacleDivisor = DefaultRules().ObstacleDivisor
	}
	if c.Rules.SlowFactor <= 0 {
		c.Rules.SlowFactor = DefaultRules().SlowFactor
	}
	return c
}

// StepResult is returned by Tick.
type StepResult struct {
	Ticked bool    // Whether a logical tick was consumed
	Phase  Phase   // Phase after the call
	Events []Event // What happened during the tick, in order
}

// Game is one in-progress session. It exclusively owns its state: Tick
// mutates it in place and Snapshot hands out copies, so no caller ever holds
// an alias into live state. A Game must not be used from multiple goroutines.
type Game struct {
	cfg Config
	rng *rng.RNG

	snake       *Snake
	items       []Item
	obstacles   []core.Point
	obstacleSet core.Occupancy
	effects     []ActiveEffect

	now      time.Duration // Simulation time since session start
	lastTick time.Duration
	ticks    uint64
	paused   bool
	cause    DeathCause

	applesEaten    int
	itemsCollected int
	collected      [itemTypeCount]int

	events []Event // Scratch buffer for the current tick
}

// New creates a session: a snake at the grid center heading right, obstacles
// when the wall mode asks for them, and one initial item.
func New(cfg Config) *Game {
	cfg = cfg.normalize()

	g := &Game{
		cfg:         cfg,
		rng:         rng.New(cfg.Seed),
		snake:       NewSnake(core.Point{X: cfg.Width / 2, Y: cfg.Height / 2}),
		obstacleSet: make(core.Occupancy),
	}

	if cfg.WallMode == core.WallObstacles {
		g.placeObstacles()
	}

	occupied := core.NewOccupancy(g.snake.body, g.obstacles)
	if it, ok := SpawnItem(g.rng, occupied, cfg.Width, cfg.Height, g.now); ok {
		g.items = append(g.items, it)
	}

	return g
}

// placeObstacles scatters static obstacles, one per ObstacleDivisor cells,
// stopping early when the grid fills up.
func (g *Game) placeObstacles() {
	count := g.cfg.Width * g.cfg.Height / g.cfg.Rules.ObstacleDivisor
	occupied := core.NewOccupancy(g.snake.body)

	for range count {
		p, ok := core.RandomEmptyCell(g.rng, g.cfg.Width, g.cfg.Height, occupied)
		if !ok {
			break
		}
		g.obstacles = append(g.obstacles, p)
		g.obstacleSet.Add(p)
		occupied.Add(p)
	}
}

// Config returns the normalized session configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() Phase {
	switch {
	case !g.snake.alive:
		return PhaseOver
	case g.paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// RequestTurn buffers a heading change for the next tick. Reversals are
// ignored, as are requests while paused or after game over.
func (g *Game) RequestTurn(d core.Direction) {
	if g.Phase() != PhaseRunning {
		return
	}
	g.snake.Turn(d)
}

// SetPaused pauses or resumes the session. A finished session stays over.
func (g *Game) SetPaused(paused bool) {
	if !g.snake.alive {
		return
	}
	g.paused = paused
}

// TogglePause flips the pause state.
func (g *Game) TogglePause() {
	g.SetPaused(!g.paused)
}

// Now returns the simulation time since the session started.
func (g *Game) Now() time.Duration {
	return g.now
}

// hasEffect reports whether an effect of kind k is in force.
func (g *Game) hasEffect(k EffectKind) bool {
	for _, e := range g.effects {
		if e.Kind == k && e.Active(g.now) {
			return true
		}
	}
	return false
}

// TickRate returns the effective ticks per second, reduced while slowed.
func (g *Game) TickRate() float64 {
	rate := float64(g.cfg.TickRate)
	if g.hasEffect(EffectSlow) {
		rate *= g.cfg.Rules.SlowFactor
	}
	return rate
}

// TickInterval returns the simulated time between two logical ticks.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / g.TickRate())
}

// Tick advances simulation time by delta and consumes at most one logical
// tick once a full tick interval has elapsed since the previous one.
// Paused and finished sessions ignore the call entirely. A negative delta
// counts as zero.
func (g *Game) Tick(delta time.Duration) StepResult {
	if g.paused || !g.snake.alive {
		return StepResult{Phase: g.Phase()}
	}

	g.now += max(delta, 0)
	if g.now-g.lastTick < g.TickInterval() {
		return StepResult{Phase: g.Phase()}
	}

	g.lastTick = g.now
	g.ticks++
	g.events = nil
	g.step()

	return StepResult{
		Ticked: true,
		Phase:  g.Phase(),
		Events: g.events,
	}
}

// step runs one logical tick. Each early return is a commit point: once the
// snake dies nothing else in the world changes.
func (g *Game) step() {
	g.expireEffects()
	invincible := g.hasEffect(EffectInvincible)

	g.snake.Advance(g.cfg.Width, g.cfg.Height, g.cfg.WallMode)
	if !g.snake.alive {
		g.die(CauseWallCollision)
		return
	}

	if !invincible {
		if g.snake.SelfCollision() {
			g.die(CauseSelfCollision)
			return
		}
		if g.snake.ObstacleCollision(g.obstacleSet) {
			g.die(CauseObstacleCollision)
			return
		}
	}

	if idx, ok := g.itemAt(g.snake.Head()); ok {
		if g.items[idx].Type.Spec().Lethal && !invincible {
			g.die(CauseBomb)
			return
		}
		g.collect(idx)
	}

	g.sweepItems()
	g.maybeSpawn()
}

// expireEffects drops effects whose end time has been reached.
func (g *Game) expireEffects() {
	kept := g.effects[:0]
	for _, e := range g.effects {
		if e.Active(g.now) {
			kept = append(kept, e)
			continue
		}
		g.emit(Event{Kind: EventEffectExpired, Effect: e})
	}
	g.effects = kept
}

// itemAt finds the item under p. When several share the cell the earliest
// spawned wins, then the one spawned first in list order.
func (g *Game) itemAt(p core.Point) (int, bool) {
	found := -1
	for i, it := range g.items {
		if it.Position != p {
			continue
		}
		if found < 0 || it.SpawnedAt < g.items[found].SpawnedAt {
			found = i
		}
	}
	return found, found >= 0
}

// collect applies the reward of items[idx] and removes it.
func (g *Game) collect(idx int) {
	it := g.items[idx]
	reward := ResolveReward(it.Type)

	g.snake.Grow(reward.Growth)
	g.snake.AddScore(reward.Score)
	if it.Type == ItemApple {
		g.applesEaten++
	}
	g.itemsCollected++
	g.collected[it.Type]++

	g.items = append(g.items[:idx], g.items[idx+1:]...)
	g.emit(Event{Kind: EventItemCollected, Item: it})

	if reward.HasEffect() {
		e := ActiveEffect{Kind: reward.Effect, Until: g.now + reward.Duration}
		g.effects = append(g.effects, e)
		g.emit(Event{Kind: EventEffectApplied, Effect: e})
	}
}

// sweepItems removes every expired item.
func (g *Game) sweepItems() {
	kept := g.items[:0]
	for _, it := range g.items {
		if it.Expired(g.now) {
			g.emit(Event{Kind: EventItemExpired, Item: it})
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept
}

// maybeSpawn rolls for one extra item while below the item cap.
func (g *Game) maybeSpawn() {
	if len(g.items) >= g.cfg.Rules.MaxItems || !g.rng.Chance(g.cfg.Rules.SpawnChance) {
		return
	}

	positions := make([]core.Point, len(g.items))
	for i, it := range g.items {
		positions[i] = it.Position
	}
	occupied := core.NewOccupancy(g.snake.body, g.obstacles, positions)

	if it, ok := SpawnItem(g.rng, occupied, g.cfg.Width, g.cfg.Height, g.now); ok {
		g.items = append(g.items, it)
		g.emit(Event{Kind: EventItemSpawned, Item: it})
	}
}

func (g *Game) die(cause DeathCause) {
	g.snake.kill()
	g.cause = cause
	g.emit(Event{Kind: EventDied, Cause: cause})
}

func (g *Game) emit(e Event) {
	e.At = g.now
	g.events = append(g.events, e)
}
