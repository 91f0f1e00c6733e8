package domain

import "testing"

func TestRoundRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{9.27, 9.3},
		{9.24, 9.2},
		{4.0, 4.0},
		{10.04, 10.0},
		{10.05, 10.1},
		{0.96, 1.0},
		{0.94, 0.9},
	}

	for _, tt := range tests {
		if got := RoundRating(tt.in); got != tt.want {
			t.Errorf("RoundRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBayesianScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		avg  float64
		m    int
		c    float64
		want float64
	}{
		{"no ratings falls back to prior", 0, 0, 1, 5.5, 5.5},
		{"ten ratings of eight", 10, 8.0, 1, 5.5, 7.77},
		{"single rating pulled halfway", 1, 10.0, 1, 5.5, 7.75},
		{"large sample dominates prior", 1000, 9.0, 1, 5.5, 9.0},
		{"prior rounded to two places", 0, 0, 1, 5.555, 5.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BayesianScore(tt.n, tt.avg, tt.m, tt.c); got != tt.want {
				t.Errorf("BayesianScore(%d, %v, %d, %v) = %v, want %v",
					tt.n, tt.avg, tt.m, tt.c, got, tt.want)
			}
		})
	}
}
