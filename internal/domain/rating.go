package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rating is one user's rating of a game. Superseding a rating deactivates
// the old row and inserts a new one; at most one row per (game, user) pair
// is active at any time, and aggregates only ever read active rows.
type Rating struct {
	ID      int64
	GameID  int64
	UserID  uuid.UUID
	Value   float64
	Active  bool
	Created time.Time
}

// GameScore is the live rating aggregate for a single game.
type GameScore struct {
	GameID  int64
	Ratings int
	Average float64
	Score   float64
}

// RoundRating rounds v to one decimal place, half away from zero.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// BayesianScore pulls the average of n ratings toward the global prior c
// weighted by m virtual votes, rounded to two decimal places:
//
//	(n*avg + m*c) / (n + m)
//
// With n = 0 the score is the rounded prior itself; the function is total.
func BayesianScore(n int, avg float64, m int, c float64) float64 {
	if n <= 0 {
		return round2(c)
	}
	return round2((float64(n)*avg + float64(m)*c) / float64(n+m))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
