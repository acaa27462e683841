package engine2D

import (
	"context"
	"time"

	"hero-spotlight/internal/wallpaper"
)

// Loop drives an Animator from its own tickers for hosts that have no frame loop
// of their own. All animation state is touched from the goroutine running Run.
type Loop struct {
	Animator      *Animator
	FrameInterval time.Duration
	SweepInterval time.Duration

	// Pointer delivers raw pointer positions.
	Pointer <-chan wallpaper.Vec2
	// Hooks run on the loop goroutine, so they may use the Animator directly.
	Hooks <-chan func(*Animator)
	// OnFrame is called after every tick.
	OnFrame func(*Animator)
}

// Run ticks until ctx is cancelled and returns ctx.Err(). The animator is
// started on entry and stopped on return.
func (l *Loop) Run(ctx context.Context) error {
	frames := time.NewTicker(l.FrameInterval)
	defer frames.Stop()
	sweeps := time.NewTicker(l.SweepInterval)
	defer sweeps.Stop()

	l.Animator.Start()
	defer l.Animator.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-l.Pointer:
			if !ok {
				l.Pointer = nil
				continue
			}
			l.Animator.SetPointer(p)
		case hook, ok := <-l.Hooks:
			if !ok {
				l.Hooks = nil
				continue
			}
			hook(l.Animator)
		case <-frames.C:
			l.Animator.Tick()
			if l.OnFrame != nil {
				l.OnFrame(l.Animator)
			}
		case <-sweeps.C:
			l.Animator.Sweep()
		}
	}
}
