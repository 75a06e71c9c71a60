package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data/rules.json", cfg.Paths.Rules)
	assert.Equal(t, "public/today.json", cfg.Paths.Today)
	assert.Equal(t, "empty", cfg.Build.MissingDayPolicy)
	assert.Equal(t, "snack", cfg.Build.SnackCode)
	assert.Len(t, cfg.Participants, 2)
	assert.Equal(t, "Uniform", cfg.Labels.Clothing["uniform"])
	assert.Equal(t, "Art", cfg.Labels.ClubShortNames["Creative Art Club"])
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
paths:
  rules: testdata/rules.json
  today: out/today.json
participants:
  - id: kid_a
    default_dropoff: "08:00"
    default_pickup: "16:45"
build:
  missing_day_policy: synthetic
labels:
  clothing:
    uniform: Summer Uniform
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/rules.json", cfg.Paths.Rules)
	assert.Equal(t, "out/today.json", cfg.Paths.Today)
	assert.Equal(t, "data/clubs.json", cfg.Paths.Clubs, "unset paths keep defaults")
	assert.Equal(t, "synthetic", cfg.Build.MissingDayPolicy)
	require.Len(t, cfg.Participants, 1)
	assert.Equal(t, "kid_a", cfg.Participants[0].ID)
	assert.Equal(t, "Summer Uniform", cfg.Labels.Clothing["uniform"], "config wins over compiled-in label")
	assert.Equal(t, "Sports Kit", cfg.Labels.Clothing["sport"], "other defaults survive")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)
}

func TestValidateRejectsBadPolicy(t *testing.T) {
	cfg := Default()
	cfg.Build.MissingDayPolicy = "guess"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}
