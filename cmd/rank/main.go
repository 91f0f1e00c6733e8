// Command rank prints the ranked game listing to stdout. It is an
// operational check for the live aggregation path, not a user-facing
// surface.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/yaseigamedb/backend/internal/app"
	"github.com/yaseigamedb/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	ranked, err := a.Catalog.ListRankedGames(ctx)
	if err != nil {
		logger.Error("list ranked games", slog.String("error", err.Error()))
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tSCORE\tRATINGS\tRELEASES")
	for i, r := range ranked {
		score := fmt.Sprintf("%.2f", r.Score)
		if r.Unrated {
			score = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i+1, r.Game.SortTitle(), score, r.Ratings, r.Releases)
	}
	if err := w.Flush(); err != nil {
		logger.Error("write listing", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
