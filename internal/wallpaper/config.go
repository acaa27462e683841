package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultBaseImage   = "https://i.ibb.co/0VmbRs8j/Whats-App-Image-2026-02-06-at-17-23-36.jpg"
	DefaultRevealImage = "https://i.ibb.co/mC7Z085K/Whats-App-Image-2026-02-06-at-17-23-49.jpg"
)

type Config struct {
	Motion   MotionConfig   `yaml:"motion"`
	Echo     EchoConfig     `yaml:"echo"`
	Parallax ParallaxConfig `yaml:"parallax"`
	Render   RenderConfig   `yaml:"render"`
	UI       UIConfig       `yaml:"ui"`
	Assets   AssetsConfig   `yaml:"assets"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type MotionConfig struct {
	// Smoothing is the per-tick weight pulling the delayed position toward the pointer.
	Smoothing float64 `yaml:"smoothing"`
	FrameRate int     `yaml:"frame_rate"`
}

type EchoConfig struct {
	SpeedThreshold float64       `yaml:"speed_threshold"`
	Cooldown       time.Duration `yaml:"cooldown"`
	MaxCount       int           `yaml:"max_count"`
	Lifetime       time.Duration `yaml:"lifetime"`
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	Opacity        float64       `yaml:"opacity"`
}

type ParallaxConfig struct {
	Strength     float64 `yaml:"strength"`
	GridStrength float64 `yaml:"grid_strength"`
	ImageDamping float64 `yaml:"image_damping"`
	UIDamping    float64 `yaml:"ui_damping"`
	GridDamping  float64 `yaml:"grid_damping"`
}

type RenderConfig struct {
	SpotlightRadius float64 `yaml:"spotlight_radius"`
	ImageZoom       float64 `yaml:"image_zoom"`
	CursorRadius    float64 `yaml:"cursor_radius"`
	CursorAlpha     float64 `yaml:"cursor_alpha"`
	RingAlpha       float64 `yaml:"ring_alpha"`
	GridSize        float64 `yaml:"grid_size"`
	GridAlpha       float64 `yaml:"grid_alpha"`
}

type UIConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	FontSize int    `yaml:"font_size"`
}

type AssetsConfig struct {
	Base     string `yaml:"base"`
	Reveal   string `yaml:"reveal"`
	CacheDir string `yaml:"cache_dir"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Wallpaper bool   `yaml:"wallpaper"`
}

type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

func DefaultConfig() Config {
	return Config{
		Motion: MotionConfig{
			Smoothing: 0.15,
			FrameRate: 60,
		},
		Echo: EchoConfig{
			SpeedThreshold: 50,
			Cooldown:       50 * time.Millisecond,
			MaxCount:       9,
			Lifetime:       500 * time.Millisecond,
			SweepInterval:  100 * time.Millisecond,
			Opacity:        0.5,
		},
		Parallax: ParallaxConfig{
			Strength:     20,
			GridStrength: 20,
			ImageDamping: -1,
			UIDamping:    -0.5,
			GridDamping:  1,
		},
		Render: RenderConfig{
			SpotlightRadius: 180,
			ImageZoom:       1.1,
			CursorRadius:    10,
			CursorAlpha:     0.2,
			RingAlpha:       0.1,
			GridSize:        80,
			GridAlpha:       0.03,
		},
		UI: UIConfig{
			Title:    "ECHOES",
			Subtitle: "move to reveal",
			FontSize: 96,
		},
		Assets: AssetsConfig{
			Base:   DefaultBaseImage,
			Reveal: DefaultRevealImage,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Hero Spotlight",
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	switch {
	case c.Motion.Smoothing <= 0 || c.Motion.Smoothing > 1:
		return fmt.Errorf("%w: motion.smoothing must be in (0,1], got %g", ErrInvalidConfig, c.Motion.Smoothing)
	case c.Motion.FrameRate <= 0:
		return fmt.Errorf("%w: motion.frame_rate must be positive", ErrInvalidConfig)
	case c.Echo.SpeedThreshold < 0:
		return fmt.Errorf("%w: echo.speed_threshold must not be negative", ErrInvalidConfig)
	case c.Echo.Cooldown < 0:
		return fmt.Errorf("%w: echo.cooldown must not be negative", ErrInvalidConfig)
	case c.Echo.MaxCount < 1:
		return fmt.Errorf("%w: echo.max_count must be at least 1", ErrInvalidConfig)
	case c.Echo.Lifetime <= 0:
		return fmt.Errorf("%w: echo.lifetime must be positive", ErrInvalidConfig)
	case c.Echo.SweepInterval <= 0:
		return fmt.Errorf("%w: echo.sweep_interval must be positive", ErrInvalidConfig)
	case c.Render.SpotlightRadius < 0:
		return fmt.Errorf("%w: render.spotlight_radius must not be negative", ErrInvalidConfig)
	case c.Render.ImageZoom <= 0:
		return fmt.Errorf("%w: render.image_zoom must be positive", ErrInvalidConfig)
	case c.Render.GridSize <= 0:
		return fmt.Errorf("%w: render.grid_size must be positive", ErrInvalidConfig)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalidConfig)
	}
	return nil
}

// FrameInterval is the tick period for hosts that drive the loop themselves.
func (m MotionConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(m.FrameRate)
}
