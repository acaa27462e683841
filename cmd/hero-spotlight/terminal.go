package main

import (
	"context"
	"errors"
	"fmt"
	"image"

	"hero-spotlight/internal/engine2D"
	"hero-spotlight/internal/engine2D/term"
	"hero-spotlight/internal/utils"
	"hero-spotlight/internal/wallpaper"

	"github.com/gdamore/tcell/v2"
)

// runTerminal previews the animation on a character grid. Input and config
// changes arrive from their own goroutines; everything that touches the
// animator or the renderer runs on the loop goroutine.
func runTerminal(cfg wallpaper.Config, configPath string, watcher *wallpaper.ConfigWatcher) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := term.NewRenderer(screen, cfg)
	renderer.SetImages(loadImages(cfg.Assets))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pointer := make(chan wallpaper.Vec2, 16)
	hooks := make(chan func(*engine2D.Animator), 4)

	go forwardEvents(ctx, cancel, screen, renderer, pointer, hooks)
	if watcher != nil {
		go forwardReloads(ctx, watcher, configPath, cfg, renderer, hooks)
	}

	loop := &engine2D.Loop{
		Animator:      engine2D.NewAnimator(cfg, nil),
		FrameInterval: cfg.Motion.FrameInterval(),
		SweepInterval: cfg.Echo.SweepInterval,
		Pointer:       pointer,
		Hooks:         hooks,
		OnFrame: func(a *engine2D.Animator) {
			renderer.Draw(a.Frame(renderer.Viewport()))
		},
	}

	utils.Info("Terminal preview running; press q or Esc to quit")
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func forwardEvents(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, renderer *term.Renderer,
	pointer chan<- wallpaper.Vec2, hooks chan<- func(*engine2D.Animator)) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventMouse:
			x, y := ev.Position()
			select {
			case pointer <- renderer.CellCenter(x, y):
			case <-ctx.Done():
				return
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			select {
			case hooks <- func(*engine2D.Animator) { screen.Sync() }:
			case <-ctx.Done():
				return
			}
		}
	}
}

// forwardReloads re-reads the config on every change. Images are loaded here so
// a slow download never stalls the frame loop.
func forwardReloads(ctx context.Context, watcher *wallpaper.ConfigWatcher, configPath string,
	current wallpaper.Config, renderer *term.Renderer, hooks chan<- func(*engine2D.Animator)) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-watcher.Errors:
			utils.Warn("Config watcher: %v", err)
		case <-watcher.Events:
			cfg, ok := reloadConfig(configPath)
			if !ok {
				continue
			}
			reloadImages := cfg.Assets != current.Assets
			current = cfg
			var base, reveal image.Image
			if reloadImages {
				base, reveal = loadImages(cfg.Assets)
			}
			hook := func(a *engine2D.Animator) {
				a.Apply(cfg)
				renderer.Apply(cfg)
				if reloadImages {
					renderer.SetImages(base, reveal)
				}
			}
			select {
			case hooks <- hook:
			case <-ctx.Done():
				return
			}
		}
	}
}
