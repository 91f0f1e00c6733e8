package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be within [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Rating.validate(); err != nil {
		return fmt.Errorf("rating: %w", err)
	}

	return nil
}

func (r *RatingConfig) validate() error {
	if r.MinValue >= r.MaxValue {
		return fmt.Errorf("min_value must be < max_value (got %v >= %v)", r.MinValue, r.MaxValue)
	}
	if r.MinimumVotes < 0 {
		return fmt.Errorf("minimum_votes must be >= 0 (got %d)", r.MinimumVotes)
	}
	if r.GlobalAverage < r.MinValue || r.GlobalAverage > r.MaxValue {
		return fmt.Errorf("global_average %v outside rating range [%v, %v]",
			r.GlobalAverage, r.MinValue, r.MaxValue)
	}
	return nil
}
