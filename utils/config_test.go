package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateMutationRateBounds(t *testing.T) {
	for _, rate := range []float64{-0.1, 1.5, -1, 2} {
		config := DefaultConfig()
		config.MutationRate = rate
		assert.Error(t, config.Validate(), "rate %v", rate)
	}

	for _, rate := range []float64{0.0, 0.5, 1.0} {
		config := DefaultConfig()
		config.MutationRate = rate
		assert.NoError(t, config.Validate(), "rate %v", rate)
	}
}

func TestValidateSeedingFields(t *testing.T) {
	for _, density := range []float64{-0.1, 1.5} {
		config := DefaultConfig()
		config.RandomDensity = density
		assert.Error(t, config.Validate(), "density %v", density)
	}

	config := DefaultConfig()
	config.InjectionCount = -1
	assert.Error(t, config.Validate())
}

func TestValidateDimensions(t *testing.T) {
	config := DefaultConfig()
	config.Width = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Height = -5
	assert.Error(t, config.Validate())
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"width": 80, "mutation_rate": 0.25, "pattern": "pulsar", "frame_rate": 50000000}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 80, config.Width)
	assert.Equal(t, 0.25, config.MutationRate)
	assert.Equal(t, "pulsar", config.Pattern)
	assert.Equal(t, 50*time.Millisecond, config.FrameRate)
	// Untouched fields keep their defaults
	assert.Equal(t, DefaultConfig().Height, config.Height)
}
