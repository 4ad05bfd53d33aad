// Package config loads the runtime tunables of the showcase: animation
// timings, visibility thresholds and gesture sensitivity.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ensigniasec/wanderwise/internal/validate"
)

// ErrInvalidConfig wraps validation failures of the loaded settings.
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "WANDERWISE"

// DefaultPath is where Load looks when no explicit file is given.
const DefaultPath = "~/.config/wanderwise/config.yaml"

// Config holds every tunable. Durations are in milliseconds on disk.
type Config struct {
	SplashMS           int     `mapstructure:"splash_ms" validate:"gte=0"`
	HeroIntervalMS     int     `mapstructure:"hero_interval_ms" validate:"gte=0"`
	CarouselIntervalMS int     `mapstructure:"carousel_interval_ms" validate:"gte=0"`
	SliderIntervalMS   int     `mapstructure:"slider_interval_ms" validate:"gte=0"`
	CounterDurationMS  int     `mapstructure:"counter_duration_ms" validate:"gt=0"`
	CounterSteps       int     `mapstructure:"counter_steps" validate:"gt=0"`
	StatsThreshold     float64 `mapstructure:"stats_threshold" validate:"gte=0,lte=1"`
	FeaturesThreshold  float64 `mapstructure:"features_threshold" validate:"gte=0,lte=1"`
	StaggerMS          int     `mapstructure:"stagger_ms" validate:"gte=0"`
	SwipeThreshold     float64 `mapstructure:"swipe_threshold" validate:"gt=0"`
	PixelsPerCell      float64 `mapstructure:"pixels_per_cell" validate:"gt=0"`
	ScrolledAfterLines int     `mapstructure:"scrolled_after_lines" validate:"gte=0"`
}

// Defaults mirror the reference page.
func Defaults() Config {
	return Config{
		SplashMS:           2500,
		HeroIntervalMS:     3000,
		CarouselIntervalMS: 5000,
		SliderIntervalMS:   0,
		CounterDurationMS:  2000,
		CounterSteps:       60,
		StatsThreshold:     0.5,
		FeaturesThreshold:  0.1,
		StaggerMS:          200,
		SwipeThreshold:     10000,
		PixelsPerCell:      8,
		ScrolledAfterLines: 2,
	}
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

// Splash is how long the loading screen stays up.
func (c Config) Splash() time.Duration { return ms(c.SplashMS) }

// HeroInterval is the rotation period of the hero word.
func (c Config) HeroInterval() time.Duration { return ms(c.HeroIntervalMS) }

// CarouselInterval is the destination carousel auto-advance period.
func (c Config) CarouselInterval() time.Duration { return ms(c.CarouselIntervalMS) }

// SliderInterval is the testimonial auto-advance period; zero means manual.
func (c Config) SliderInterval() time.Duration { return ms(c.SliderIntervalMS) }

// CounterDuration is the total run time of each statistic counter.
func (c Config) CounterDuration() time.Duration { return ms(c.CounterDurationMS) }

// Stagger is the delay between successive feature cards.
func (c Config) Stagger() time.Duration { return ms(c.StaggerMS) }

// Load reads settings from path (YAML) and WANDERWISE_* environment
// variables on top of Defaults. An empty path tries DefaultPath and
// tolerates its absence; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := expandTilde(path)
	if err != nil {
		return Config{}, err
	}
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case !explicit && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)):
			logrus.WithField("path", expanded).Debug("no config file, using defaults")
		default:
			return Config{}, fmt.Errorf("reading config file %s: %w", expanded, err)
		}
	} else {
		logrus.WithField("path", v.ConfigFileUsed()).Debug("loaded config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it and
// Unmarshal sees it.
func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("splash_ms", d.SplashMS)
	v.SetDefault("hero_interval_ms", d.HeroIntervalMS)
	v.SetDefault("carousel_interval_ms", d.CarouselIntervalMS)
	v.SetDefault("slider_interval_ms", d.SliderIntervalMS)
	v.SetDefault("counter_duration_ms", d.CounterDurationMS)
	v.SetDefault("counter_steps", d.CounterSteps)
	v.SetDefault("stats_threshold", d.StatsThreshold)
	v.SetDefault("features_threshold", d.FeaturesThreshold)
	v.SetDefault("stagger_ms", d.StaggerMS)
	v.SetDefault("swipe_threshold", d.SwipeThreshold)
	v.SetDefault("pixels_per_cell", d.PixelsPerCell)
	v.SetDefault("scrolled_after_lines", d.ScrolledAfterLines)
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
