// Command digest generates one batch of learning cards for every stored
// topic, records the visit in the streak and prints the cards. It is meant
// for cron jobs and terminals where the web client is not used.
//
// Usage:
//
//	digest [-json] [-no-streak]
//
// Exit codes: 0 = every card generated, 1 = error, 2 = some cards failed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/app"
	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

type digest struct {
	Streak  domain.Streak        `json:"streak"`
	Outcome domain.StreakOutcome `json:"outcome,omitempty"`
	Cards   []domain.Card        `json:"cards"`
}

func main() {
	asJSON := flag.Bool("json", false, "print the digest as JSON")
	noStreak := flag.Bool("no-streak", false, "do not record a visit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	code := run(ctx, svc, *noStreak, *asJSON, os.Stdout, logger)

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := svc.Close(closeCtx); err != nil {
		logger.Error("close services", slog.String("error", err.Error()))
	}
	os.Exit(code)
}

func run(ctx context.Context, svc *app.Services, noStreak, asJSON bool, out io.Writer, logger *slog.Logger) int {
	var d digest

	if noStreak {
		st, err := svc.Streak.Get(ctx)
		if err != nil {
			logger.Error("read streak", slog.String("error", err.Error()))
			return 1
		}
		d.Streak = st
	} else {
		res, err := svc.Streak.Touch(ctx, time.Now())
		if err != nil {
			logger.Error("record visit", slog.String("error", err.Error()))
			return 1
		}
		d.Streak, d.Outcome = res.Streak, res.Outcome
	}

	batch, err := svc.Board.RunBatch(ctx)
	if err != nil {
		logger.Error("generate batch", slog.String("error", err.Error()))
		return 1
	}
	d.Cards = batch.Cards

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			logger.Error("write digest", slog.String("error", err.Error()))
			return 1
		}
	} else {
		printText(out, d)
	}

	for _, c := range d.Cards {
		if c.State != domain.CardStateReady {
			return 2
		}
	}
	return 0
}

func printText(w io.Writer, d digest) {
	fmt.Fprintf(w, "Streak: %d day(s)", d.Streak.Count)
	if d.Outcome != "" {
		fmt.Fprintf(w, " (%s)", d.Outcome)
	}
	fmt.Fprintln(w)

	if len(d.Cards) == 0 {
		fmt.Fprintln(w, "\nNo topics yet. Add one with POST /api/topics.")
		return
	}

	for _, c := range d.Cards {
		fmt.Fprintf(w, "\n== %s · %s ==\n", c.Topic, c.PromptCategory)
		switch c.State {
		case domain.CardStateReady:
			fmt.Fprintln(w, c.Content)
		default:
			fmt.Fprintf(w, "[%s] %s\n", c.State, c.Error)
		}
	}
}
