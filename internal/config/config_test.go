package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("CONFIG_PATH", "")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

rating:
  min_value: 1
  max_value: 10
  minimum_votes: 3
  global_average: 6.0
`

func TestLoad_EnvDefaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 1.0, cfg.Rating.MinValue)
	assert.Equal(t, 10.0, cfg.Rating.MaxValue)
	assert.Equal(t, 1, cfg.Rating.MinimumVotes)
	assert.Equal(t, 5.5, cfg.Rating.GlobalAverage)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Rating.MinimumVotes)
	assert.Equal(t, 6.0, cfg.Rating.GlobalAverage)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("RATING_GLOBAL_AVERAGE", "7.25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7.25, cfg.Rating.GlobalAverage)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "") // register restore
	os.Unsetenv("DATABASE_DSN")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_Rating(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{MaxConns: 25, MinConns: 5},
			Rating:   RatingConfig{MinValue: 1, MaxValue: 10, MinimumVotes: 1, GlobalAverage: 5.5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"inverted range", func(c *Config) { c.Rating.MinValue = 10; c.Rating.MaxValue = 1 }, true},
		{"negative minimum votes", func(c *Config) { c.Rating.MinimumVotes = -1 }, true},
		{"prior outside range", func(c *Config) { c.Rating.GlobalAverage = 11 }, true},
		{"min_conns above max_conns", func(c *Config) { c.Database.MinConns = 30 }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
