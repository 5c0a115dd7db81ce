package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"play-and-learn/internal/anim"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Environment variables read by Load
const (
	EnvConfigFile       = "PLAYLEARN_CONFIG"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvDebug            = "DEBUG"
	EnvAssetDir         = "PLAYLEARN_ASSET_DIR"
	EnvSound            = "PLAYLEARN_SOUND"
	EnvNumberRounds     = "PLAYLEARN_NUMBER_ROUNDS"
	EnvArithmeticRounds = "PLAYLEARN_ARITHMETIC_ROUNDS"
)

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Assets    AssetConfig     `yaml:"assets"`
	Sound     bool            `yaml:"sound"`
	Games     GameConfig      `yaml:"games"`
	Animation AnimationConfig `yaml:"animation"`
	Window    WindowConfig    `yaml:"window"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AssetConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Music      string `yaml:"music"`
}

type GameConfig struct {
	NumberRounds     int           `yaml:"number_rounds"`
	ArithmeticRounds int           `yaml:"arithmetic_rounds"` // 0 runs until the player leaves
	NumberDelay      time.Duration `yaml:"number_delay"`
	ArithmeticDelay  time.Duration `yaml:"arithmetic_delay"`
	VictoryDelay     time.Duration `yaml:"victory_delay"`
}

type AnimationConfig struct {
	Frame         time.Duration `yaml:"frame"`
	ReturnStep    float64       `yaml:"return_step"`
	SnapTolerance float64       `yaml:"snap_tolerance"`
	PulsePeriod   time.Duration `yaml:"pulse_period"`
}

// Return converts the animation settings for the shape board
func (a AnimationConfig) Return() anim.ReturnConfig {
	return anim.ReturnConfig{Frame: a.Frame, Step: a.ReturnStep, Tolerance: a.SnapTolerance}
}

type Size struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type WindowConfig struct {
	Launcher   Size `yaml:"launcher"`
	Shapes     Size `yaml:"shapes"`
	Numbers    Size `yaml:"numbers"`
	Arithmetic Size `yaml:"arithmetic"`
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Assets: AssetConfig{
			Dir:        ".",
			Background: "background.png",
			Music:      "background_music.wav",
		},
		Sound: true,
		Games: GameConfig{
			NumberRounds:     10,
			ArithmeticRounds: 0,
			NumberDelay:      1200 * time.Millisecond,
			ArithmeticDelay:  1500 * time.Millisecond,
			VictoryDelay:     500 * time.Millisecond,
		},
		Animation: AnimationConfig{
			Frame:         20 * time.Millisecond,
			ReturnStep:    0.1,
			SnapTolerance: 5,
			PulsePeriod:   1500 * time.Millisecond,
		},
		Window: WindowConfig{
			Launcher:   Size{Width: 900, Height: 800},
			Shapes:     Size{Width: 900, Height: 700},
			Numbers:    Size{Width: 800, Height: 600},
			Arithmetic: Size{Width: 600, Height: 400},
		},
	}
}

// Load builds the configuration from defaults, an optional .env file, the
// YAML file named by PLAYLEARN_CONFIG and environment overrides.
func Load() (*Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// LoadFile overlays the YAML document at path. Keys absent from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies environment overrides using lookup, normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvLogLevel, &c.Log.Level)
	str(EnvLogFormat, &c.Log.Format)
	str(EnvAssetDir, &c.Assets.Dir)

	if v, ok := lookup(EnvDebug); ok && v == "1" {
		c.Log.Level = "debug"
	}

	if v, ok := lookup(EnvSound); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvSound, v)
		}
		c.Sound = b
	}

	for key, dst := range map[string]*int{
		EnvNumberRounds:     &c.Games.NumberRounds,
		EnvArithmeticRounds: &c.Games.ArithmeticRounds,
	} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
		}
		*dst = n
	}
	return nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format must be console or json, got %q", ErrInvalid, c.Log.Format)
	}
	if c.Assets.Background == "" || c.Assets.Music == "" {
		return fmt.Errorf("%w: asset file names must not be empty", ErrInvalid)
	}
	if c.Games.NumberRounds < 1 {
		return fmt.Errorf("%w: number rounds must be positive, got %d", ErrInvalid, c.Games.NumberRounds)
	}
	if c.Games.ArithmeticRounds < 0 {
		return fmt.Errorf("%w: arithmetic rounds must not be negative, got %d", ErrInvalid, c.Games.ArithmeticRounds)
	}
	for name, d := range map[string]time.Duration{
		"number delay":     c.Games.NumberDelay,
		"arithmetic delay": c.Games.ArithmeticDelay,
		"victory delay":    c.Games.VictoryDelay,
		"animation frame":  c.Animation.Frame,
		"pulse period":     c.Animation.PulsePeriod,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, name, d)
		}
	}
	if c.Animation.ReturnStep <= 0 || c.Animation.ReturnStep >= 1 {
		return fmt.Errorf("%w: return step must be in (0,1), got %v", ErrInvalid, c.Animation.ReturnStep)
	}
	if c.Animation.SnapTolerance <= 0 {
		return fmt.Errorf("%w: snap tolerance must be positive, got %v", ErrInvalid, c.Animation.SnapTolerance)
	}
	for name, s := range map[string]Size{
		"launcher":   c.Window.Launcher,
		"shapes":     c.Window.Shapes,
		"numbers":    c.Window.Numbers,
		"arithmetic": c.Window.Arithmetic,
	} {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s window size %vx%v", ErrInvalid, name, s.Width, s.Height)
		}
	}
	return nil
}
