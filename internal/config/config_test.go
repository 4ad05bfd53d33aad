package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 3*time.Second, cfg.HeroInterval())
	assert.Equal(t, 5*time.Second, cfg.CarouselInterval())
	assert.Equal(t, time.Duration(0), cfg.SliderInterval())
	assert.Equal(t, 2*time.Second, cfg.CounterDuration())
	assert.Equal(t, 200*time.Millisecond, cfg.Stagger())
	assert.Equal(t, 2500*time.Millisecond, cfg.Splash())
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, ".config/wanderwise/config.yaml", "carousel_interval_ms: 7000\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.CarouselInterval())
}

func TestLoad_ExplicitFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "c.yaml", "hero_interval_ms: 1000\nstats_threshold: 0.25\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.HeroInterval())
	assert.InDelta(t, 0.25, cfg.StatsThreshold, 1e-9)
	assert.Equal(t, 60, cfg.CounterSteps)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "c.yaml", "counter_steps: 30\n")
	t.Setenv("WANDERWISE_COUNTER_STEPS", "10")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.CounterSteps)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "threshold above one", body: "stats_threshold: 1.5\n"},
		{name: "zero steps", body: "counter_steps: 0\n"},
		{name: "negative interval", body: "carousel_interval_ms: -1\n"},
		{name: "zero swipe threshold", body: "swipe_threshold: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "c.yaml", tt.body)
			_, err := Load(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandTilde("~/x/y")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x/y"), got)

	got, err = expandTilde("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
