package main

import (
	"hero-spotlight/internal/debug"
	"hero-spotlight/internal/engine2D"
	"hero-spotlight/internal/engine2D/gl"
	"hero-spotlight/internal/utils"
	"hero-spotlight/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window hosts the animation in a raylib window. raylib's frame loop is the
// only scheduler, so ticks and sweeps both come from Animator.Advance.
type Window struct {
	cfg          wallpaper.Config
	configPath   string
	watcher      *wallpaper.ConfigWatcher
	animator     *engine2D.Animator
	renderer     *gl.Renderer
	debugOverlay *debug.DebugOverlay
	pointer      *utils.X11Pointer
}

func NewWindow(cfg wallpaper.Config, configPath string, watcher *wallpaper.ConfigWatcher) *Window {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if cfg.Window.Wallpaper {
		flags |= rl.FlagWindowUndecorated
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)

	window := &Window{
		cfg:          cfg,
		configPath:   configPath,
		watcher:      watcher,
		animator:     engine2D.NewAnimator(cfg, nil),
		renderer:     gl.NewRenderer(cfg),
		debugOverlay: debug.NewDebugOverlay(),
	}

	if cfg.Window.Wallpaper {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		rl.SetWindowPosition(0, 0)

		pointer, err := utils.NewX11Pointer()
		if err != nil {
			utils.Warn("Global pointer unavailable, falling back to window events: %v", err)
		} else {
			window.pointer = pointer
		}
	}
	rl.HideCursor()

	base, reveal := loadImages(cfg.Assets)
	window.renderer.SetImages(base, reveal)

	return window
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.cfg.Motion.FrameRate))

	window.animator.Start()
	defer window.animator.Stop()

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	window.pollConfig()

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}

	window.animator.SetPointer(window.pointerPosition())
	removed := window.animator.Advance()

	if utils.ShowDebugUI {
		window.debugOverlay.CountSweep(removed)
		window.debugOverlay.Update()
	}
}

// pointerPosition returns the pointer in window coordinates.
func (window *Window) pointerPosition() wallpaper.Vec2 {
	if window.pointer != nil {
		x, y, err := window.pointer.Position()
		if err == nil {
			origin := rl.GetWindowPosition()
			return wallpaper.Vec2{X: float64(x) - float64(origin.X), Y: float64(y) - float64(origin.Y)}
		}
		utils.Warn("Global pointer query failed, using window events: %v", err)
		window.pointer.Close()
		window.pointer = nil
	}
	mPos := rl.GetMousePosition()
	return wallpaper.Vec2{X: float64(mPos.X), Y: float64(mPos.Y)}
}

func (window *Window) Draw() {
	viewport := wallpaper.Viewport{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
	frame := window.animator.Frame(viewport)

	window.renderer.Draw(frame)

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(frame)
	}
}

func (window *Window) pollConfig() {
	if window.watcher == nil {
		return
	}
	select {
	case <-window.watcher.Events:
		cfg, ok := reloadConfig(window.configPath)
		if !ok {
			return
		}
		window.apply(cfg)
	case err := <-window.watcher.Errors:
		utils.Warn("Config watcher: %v", err)
	default:
	}
}

func (window *Window) apply(cfg wallpaper.Config) {
	assetsChanged := cfg.Assets != window.cfg.Assets
	window.cfg = cfg

	window.animator.Apply(cfg)
	window.renderer.Apply(cfg)
	rl.SetTargetFPS(int32(cfg.Motion.FrameRate))

	if assetsChanged {
		base, reveal := loadImages(cfg.Assets)
		window.renderer.SetImages(base, reveal)
	}
}

func (window *Window) Close() {
	window.renderer.Unload()
	window.debugOverlay.Unload()
	if window.pointer != nil {
		window.pointer.Close()
	}
	rl.CloseWindow()
}
