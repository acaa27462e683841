package engine2D

import (
	"time"

	"hero-spotlight/internal/wallpaper"
)

// Animator owns the pointer-driven animation state: the raw pointer, the
// smoothing filter, the echo trail and the echo sweep schedule. It is not safe
// for concurrent use; one loop drives it.
type Animator struct {
	cfg     wallpaper.Config
	clock   Clock
	filter  *MotionFilter
	trail   *EchoTrail
	pointer wallpaper.Vec2

	running   bool
	nextSweep time.Time
}

func NewAnimator(cfg wallpaper.Config, clock Clock) *Animator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Animator{
		cfg:    cfg,
		clock:  clock,
		filter: NewMotionFilter(cfg.Motion.Smoothing),
		trail:  NewEchoTrail(cfg.Echo),
	}
}

// Start arms the animation. The first echo sweep is due one sweep interval later.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.nextSweep = a.clock.Now().Add(a.cfg.Echo.SweepInterval)
}

// Stop freezes the animation; later ticks, sweeps and pointer events are ignored.
func (a *Animator) Stop() {
	a.running = false
}

func (a *Animator) Running() bool {
	return a.running
}

// SetPointer records a raw pointer event and re-evaluates the echo gate.
func (a *Animator) SetPointer(p wallpaper.Vec2) {
	if !a.running || p == a.pointer {
		return
	}
	a.pointer = p
	a.offerEcho()
}

// Tick advances the motion filter by one frame and re-evaluates the echo gate.
func (a *Animator) Tick() {
	if !a.running {
		return
	}
	a.filter.Step(a.pointer)
	a.offerEcho()
}

// Sweep drops expired echoes.
func (a *Animator) Sweep() int {
	if !a.running {
		return 0
	}
	return a.trail.Prune(a.clock.Now())
}

// Advance runs one tick and, if the sweep interval has elapsed, one sweep. Hosts
// whose frame loop is the only scheduler call this once per frame. It returns
// the number of echoes swept.
func (a *Animator) Advance() int {
	if !a.running {
		return 0
	}
	a.Tick()
	now := a.clock.Now()
	if now.Before(a.nextSweep) {
		return 0
	}
	removed := a.Sweep()
	for !now.Before(a.nextSweep) {
		a.nextSweep = a.nextSweep.Add(a.cfg.Echo.SweepInterval)
	}
	return removed
}

func (a *Animator) offerEcho() {
	smoothed := a.filter.Position()
	a.trail.Offer(smoothed, Speed(a.pointer, smoothed), a.clock.Now())
}

func (a *Animator) Pointer() wallpaper.Vec2 {
	return a.pointer
}

func (a *Animator) Smoothed() wallpaper.Vec2 {
	return a.filter.Position()
}

func (a *Animator) Speed() float64 {
	return Speed(a.pointer, a.filter.Position())
}

func (a *Animator) Echoes() []wallpaper.Echo {
	return a.trail.Echoes()
}

func (a *Animator) Config() wallpaper.Config {
	return a.cfg
}

// Apply swaps tunables without resetting positions or echoes.
func (a *Animator) Apply(cfg wallpaper.Config) {
	a.cfg = cfg
	a.filter.Factor = cfg.Motion.Smoothing
	a.trail.Configure(cfg.Echo)
}

// Frame snapshots the current state for a renderer.
func (a *Animator) Frame(viewport wallpaper.Viewport) Frame {
	now := a.clock.Now()
	smoothed := a.filter.Position()

	echoes := a.trail.Echoes()
	rings := make([]EchoRing, 0, len(echoes))
	for _, e := range echoes {
		rings = append(rings, EchoRing{
			ID:      e.ID,
			Center:  e.Position,
			Radius:  a.cfg.Render.SpotlightRadius,
			Opacity: EchoOpacity(e.Age(now), a.cfg.Echo),
		})
	}

	return Frame{
		Time:            now,
		Viewport:        viewport,
		Pointer:         a.pointer,
		Smoothed:        smoothed,
		Speed:           Speed(a.pointer, smoothed),
		SpotlightRadius: a.cfg.Render.SpotlightRadius,
		CursorRadius:    a.cfg.Render.CursorRadius,
		Offsets:         UpdateParallax(a.pointer, viewport, a.cfg.Parallax),
		Echoes:          rings,
	}
}
