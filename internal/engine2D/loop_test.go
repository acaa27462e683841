package engine2D

import (
	"context"
	"errors"
	"testing"
	"time"

	"hero-spotlight/internal/wallpaper"
)

func TestLoopRunsUntilCancelled(t *testing.T) {
	cfg := wallpaper.DefaultConfig()
	a := NewAnimator(cfg, SystemClock{})
	pointer := make(chan wallpaper.Vec2, 1)
	hooks := make(chan func(*Animator))
	frames := make(chan wallpaper.Vec2, 256)

	loop := &Loop{
		Animator:      a,
		FrameInterval: 2 * time.Millisecond,
		SweepInterval: 10 * time.Millisecond,
		Pointer:       pointer,
		Hooks:         hooks,
		OnFrame: func(a *Animator) {
			select {
			case frames <- a.Smoothed():
			default:
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	pointer <- wallpaper.Vec2{X: 400, Y: 300}

	deadline := time.After(3 * time.Second)
	for moved := false; !moved; {
		select {
		case p := <-frames:
			moved = p.X > 0 && p.Y > 0
		case <-deadline:
			t.Fatal("loop never advanced the smoothed position")
		}
	}

	running := make(chan bool)
	hooks <- func(a *Animator) { running <- a.Running() }
	if !<-running {
		t.Error("animator should be running inside the loop")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if a.Running() {
		t.Error("animator should be stopped once Run returns")
	}
}

func TestLoopSweepsExpiredEchoes(t *testing.T) {
	cfg := wallpaper.DefaultConfig()
	cfg.Echo.Lifetime = 20 * time.Millisecond
	a := NewAnimator(cfg, SystemClock{})
	hooks := make(chan func(*Animator))

	loop := &Loop{
		Animator:      a,
		FrameInterval: time.Hour,
		SweepInterval: 5 * time.Millisecond,
		Hooks:         hooks,
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	count := func() int {
		n := make(chan int)
		hooks <- func(a *Animator) { n <- len(a.Echoes()) }
		return <-n
	}

	hooks <- func(a *Animator) { a.SetPointer(wallpaper.Vec2{X: 900}) }
	if got := count(); got != 1 {
		t.Fatalf("Expected 1 echo after the jump, got %d", got)
	}

	deadline := time.Now().Add(3 * time.Second)
	for count() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("echo never swept")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
