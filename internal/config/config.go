package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	TPS          = 60

	// Particle background
	ParticleAreaDivisor = 9000.0
	ParticleMinSize     = 1.0
	ParticleMaxSize     = 3.0
	ParticleMaxSpeed    = 1.0
	PointerRadius       = 150.0
	RepelStep           = 10.0
	EdgeMarginFactor    = 10.0

	// Connections
	ConnectionDivisor = 7.0
	OpacityFalloff    = 20000.0
	LineAlphaScale    = 0.15
	LineWidth         = 1.0

	// Cursor
	CursorDotRadius      = 4
	CursorOutlineRadius  = 18
	CursorHoverRadius    = 28
	CursorOutlineLatency = 500 * time.Millisecond

	// Tilt
	TiltMaxDegrees  = 10.0
	TiltPerspective = 1000.0
	TiltHoverScale  = 1.02

	// Scroll effects
	RevealThreshold   = 0.15
	NavbarScrolledAt  = 50.0
	BackToTopAt       = 500.0
	ScrollWheelFactor = 40.0
	SkillBarSpeed     = 1.5 // fraction of full width per second

	// Typewriter
	TypeDelay       = 100 * time.Millisecond
	DeleteDelay     = 50 * time.Millisecond
	PhraseHold      = 2000 * time.Millisecond
	NextPhrasePause = 500 * time.Millisecond

	// Contact form
	ToastDuration = 3 * time.Second

	// Audio
	ChimeSampleRate = 44100
	ChimeRingSize   = 4096
	SmoothingFactor = 0.6
)

var (
	ParticleColor   = color.RGBA{R: 0x00, G: 0xf2, B: 0xea, A: 0xff}
	ConnectionColor = color.RGBA{R: 0, G: 242, B: 234, A: 255}

	Phrases = []string{
		"Modern Digital Experiences",
		"Futuristic Interfaces",
		"High-End Applications",
	}
)

// Settings holds the values a user may override from a JSON file or flags.
type Settings struct {
	Window WindowSettings `json:"window"`
	Audio  AudioSettings  `json:"audio"`
	Theme  string         `json:"theme"`
	Seed   int64          `json:"seed"`
}

type WindowSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	TPS    int `json:"tps"`
}

type AudioSettings struct {
	Enabled   bool    `json:"enabled"`
	Volume    float64 `json:"volume"`
	ChimeFile string  `json:"chimeFile"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  WindowWidth,
			Height: WindowHeight,
			TPS:    TPS,
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  -1,
		},
		Theme: "dark",
	}
}

// Load reads settings from path on top of the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, s.Validate()
}

// Validate reports settings that cannot drive a window.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", s.Window.TPS)
	}
	if s.Theme != "dark" && s.Theme != "light" {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	return nil
}
