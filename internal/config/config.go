package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Rating   RatingConfig   `yaml:"rating"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RatingConfig holds the rating scale and the Bayesian ranking constants.
// MinimumVotes is the virtual vote weight m, GlobalAverage the prior C.
type RatingConfig struct {
	MinValue      float64 `yaml:"min_value"      env:"RATING_MIN_VALUE"      env-default:"1"`
	MaxValue      float64 `yaml:"max_value"      env:"RATING_MAX_VALUE"      env-default:"10"`
	MinimumVotes  int     `yaml:"minimum_votes"  env:"RATING_MINIMUM_VOTES"  env-default:"1"`
	GlobalAverage float64 `yaml:"global_average" env:"RATING_GLOBAL_AVERAGE" env-default:"5.5"`
}
