package engine2D

import (
	"time"

	"hero-spotlight/internal/wallpaper"
)

// EchoTrail is the bounded list of trail markers. Two independent rules shed
// echoes: Offer keeps at most MaxCount entries when appending, and Prune drops
// anything older than Lifetime whenever the sweep timer fires.
type EchoTrail struct {
	cfg      wallpaper.EchoConfig
	echoes   []wallpaper.Echo
	lastEcho time.Time
	nextID   uint64
}

func NewEchoTrail(cfg wallpaper.EchoConfig) *EchoTrail {
	return &EchoTrail{
		cfg:    cfg,
		echoes: make([]wallpaper.Echo, 0, cfg.MaxCount),
	}
}

// Offer appends an echo at position when speed exceeds the threshold and the
// cooldown since the previous echo has elapsed.
func (t *EchoTrail) Offer(position wallpaper.Vec2, speed float64, now time.Time) (wallpaper.Echo, bool) {
	if speed <= t.cfg.SpeedThreshold {
		return wallpaper.Echo{}, false
	}
	if !t.lastEcho.IsZero() && now.Sub(t.lastEcho) <= t.cfg.Cooldown {
		return wallpaper.Echo{}, false
	}

	t.nextID++
	echo := wallpaper.Echo{ID: t.nextID, Position: position, Timestamp: now}

	if keep := t.cfg.MaxCount - 1; len(t.echoes) > keep {
		n := copy(t.echoes, t.echoes[len(t.echoes)-keep:])
		t.echoes = t.echoes[:n]
	}
	t.echoes = append(t.echoes, echo)
	t.lastEcho = now
	return echo, true
}

// Prune removes echoes whose age has reached the lifetime and reports how many
// were dropped.
func (t *EchoTrail) Prune(now time.Time) int {
	kept := t.echoes[:0]
	for _, e := range t.echoes {
		if e.Age(now) < t.cfg.Lifetime {
			kept = append(kept, e)
		}
	}
	dropped := len(t.echoes) - len(kept)
	t.echoes = kept
	return dropped
}

// Echoes returns a copy, oldest first.
func (t *EchoTrail) Echoes() []wallpaper.Echo {
	out := make([]wallpaper.Echo, len(t.echoes))
	copy(out, t.echoes)
	return out
}

func (t *EchoTrail) Len() int {
	return len(t.echoes)
}

func (t *EchoTrail) LastEcho() time.Time {
	return t.lastEcho
}

// Configure swaps thresholds in place. Existing echoes are kept; the count cap
// applies on the next append.
func (t *EchoTrail) Configure(cfg wallpaper.EchoConfig) {
	t.cfg = cfg
}

// EchoOpacity fades linearly from the configured start opacity to zero over the
// echo lifetime.
func EchoOpacity(age time.Duration, cfg wallpaper.EchoConfig) float64 {
	if age < 0 {
		return cfg.Opacity
	}
	opacity := cfg.Opacity * (1 - float64(age)/float64(cfg.Lifetime))
	if opacity < 0 {
		return 0
	}
	return opacity
}
