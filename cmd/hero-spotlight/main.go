package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hero-spotlight/internal/convert"
	"hero-spotlight/internal/utils"
	"hero-spotlight/internal/wallpaper"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	backend := flag.String("backend", "window", "Renderer backend: window or terminal")
	wallpaperMode := flag.Bool("wallpaper", false, "Run as a borderless, monitor-sized window that follows the global pointer")
	debugFlag := flag.Bool("debug", false, "Show the debug overlay at startup and enable debug logging")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
	decodePath := flag.String("decode", "", "Decode a .tex file (or pkg#entry) to PNG and exit")
	baseRef := flag.String("base", "", "Override the base image (URL, path or pkg#entry)")
	revealRef := flag.String("reveal", "", "Override the reveal image (URL, path or pkg#entry)")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	level, err := utils.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	utils.CurrentLevel = level
	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
		utils.ShowDebugUI = true
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		utils.SetOutput(f, false)
	} else if *backend == "terminal" {
		// The terminal owns the tty while the preview runs.
		utils.SetOutput(io.Discard, false)
	}

	if *decodePath != "" {
		runDecode(*decodePath)
		return
	}

	cfg := wallpaper.DefaultConfig()
	if *configPath != "" {
		cfg, err = wallpaper.LoadConfig(*configPath)
		if err != nil {
			utils.Error("Failed to load config: %v", err)
			os.Exit(1)
		}
		utils.Info("Config loaded from %s", *configPath)
	}
	if *baseRef != "" {
		cfg.Assets.Base = *baseRef
	}
	if *revealRef != "" {
		cfg.Assets.Reveal = *revealRef
	}
	if *wallpaperMode {
		cfg.Window.Wallpaper = true
	}

	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			utils.Error("Failed to encode config: %v", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	var watcher *wallpaper.ConfigWatcher
	if *watch {
		if *configPath == "" {
			utils.Warn("-watch needs -config; hot reload disabled")
		} else if watcher, err = wallpaper.NewConfigWatcher(*configPath); err != nil {
			utils.Error("Failed to watch config: %v", err)
		} else {
			defer watcher.Close()
			utils.Info("Watching %s for changes", *configPath)
		}
	}

	utils.Info("--- Hero Spotlight Start (%s) ---", *backend)

	switch *backend {
	case "window":
		w := NewWindow(cfg, *configPath, watcher)
		w.Run()
		w.Close()
	case "terminal":
		if err := runTerminal(cfg, *configPath, watcher); err != nil {
			utils.Error("Terminal preview failed: %v", err)
			os.Exit(1)
		}
	default:
		utils.Error("Unknown backend %q (want window or terminal)", *backend)
		os.Exit(2)
	}
}

func runDecode(ref string) {
	utils.Info("Decoding: %s", ref)
	img, err := convert.NewSource("").Load(ref)
	if err != nil {
		utils.Error("Decode failed: %v", err)
		os.Exit(1)
	}

	if err := os.MkdirAll("test_out", 0755); err != nil {
		utils.Error("Failed to create test_out directory: %v", err)
		os.Exit(1)
	}

	name := ref
	if i := strings.LastIndex(name, "#"); i >= 0 {
		name = name[i+1:]
	}
	baseName := filepath.Base(name)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outPath := filepath.Join("test_out", baseName+".png")

	f, err := os.Create(outPath)
	if err != nil {
		utils.Error("Failed to create output file: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		utils.Error("Failed to encode PNG: %v", err)
		os.Exit(1)
	}

	utils.Info("Decode successful! Saved to: %s", outPath)
}
