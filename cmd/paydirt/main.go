// Package main is the entry point for Paydirt.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/paydirt/data"
	"github.com/samdwyer/paydirt/internal/config"
	"github.com/samdwyer/paydirt/internal/dice"
	"github.com/samdwyer/paydirt/internal/game"
	"github.com/samdwyer/paydirt/internal/logging"
	"github.com/samdwyer/paydirt/internal/play"
	"github.com/samdwyer/paydirt/internal/playsheet"
	"github.com/samdwyer/paydirt/internal/team"
	"github.com/samdwyer/paydirt/internal/telemetry"
	"github.com/samdwyer/paydirt/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logPath := cfg.LogFile
	if cfg.Headless {
		logPath = ""
	}
	logger, closeLog, err := logging.New(logPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, ui.ErrQuit) {
			logger.Info("player quit")
			return
		}
		logger.Error("game error", "error", err)
		stop()
		closeLog()
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	tracer, shutdown := setupTelemetry(ctx, cfg, logger)
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("error shutting down telemetry", "error", err)
		}
	}()

	fsys := data.Playsheets()
	if cfg.PlaysheetDir != "" {
		fsys = os.DirFS(cfg.PlaysheetDir)
	}
	roller := dice.New(&dice.Config{Seed: cfg.Seed})

	var (
		chooser  game.Chooser
		renderer game.Renderer
		keys     *ui.Chooser
		screen   *ui.Screen
	)
	if cfg.Headless {
		chooser = game.NewRandomChooser(roller)
		renderer = game.NopRenderer{}
	} else {
		var err error
		screen, err = ui.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		defer screen.Close()

		board := ui.NewRenderer(screen, cfg.AnimationFrames, ui.DefaultFrameDelay)
		keys = ui.NewChooser(screen, board)
		keys.Title = "Pick your team"
		chooser, renderer = keys, board
	}

	user, err := game.SelectTeam(ctx, chooser, fsys, cfg.UserTeam, logger)
	if err != nil {
		return fmt.Errorf("failed to select user team: %w", err)
	}
	comp, err := compTeam(fsys, cfg.CompTeam, user.ID, roller)
	if err != nil {
		return fmt.Errorf("failed to select comp team: %w", err)
	}

	g, err := game.New(&game.Config{
		User:           user,
		Comp:           comp,
		Chooser:        chooser,
		Renderer:       renderer,
		Roller:         roller,
		QuarterSeconds: cfg.QuarterSeconds,
		CoinToss:       cfg.CoinToss,
		Logger:         logger,
		Tracer:         tracer,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	if keys != nil {
		keys.Title = "Your call"
		keys.OnTimeout = func() error { return g.CallTimeout(play.SideUser) }
	}

	if err := g.Run(ctx); err != nil {
		return err
	}

	if cfg.Headless {
		fmt.Printf("Final: %s %d, %s %d\n", user.Name, user.Score, comp.Name, comp.Score)
		return nil
	}
	waitForKey(screen)
	return nil
}

// compTeam loads the named team, or a random team other than the user's.
func compTeam(fsys fs.FS, name, userID string, roller *dice.Roller) (*team.Team, error) {
	if name == "" {
		names, err := playsheet.Names(fsys)
		if err != nil {
			return nil, err
		}
		others := names[:0]
		for _, n := range names {
			if n != userID {
				others = append(others, n)
			}
		}
		if len(others) == 0 {
			return nil, errors.New("no opponent playsheet available")
		}
		name = roller.Pick(others)
	}

	sheet, err := playsheet.LoadFS(fsys, name)
	if err != nil {
		return nil, err
	}
	return team.New(name, sheet), nil
}

// setupTelemetry starts the OTLP exporter when enabled. Without it, spans go nowhere.
func setupTelemetry(ctx context.Context, cfg *config.Config, logger *slog.Logger) (trace.Tracer, func(context.Context) error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Telemetry {
		return telemetry.NoopTracer(), noop
	}

	tel, err := config.LoadTelemetry()
	if err != nil {
		logger.Warn("telemetry config invalid, running without observability", "error", err)
		return telemetry.NoopTracer(), noop
	}
	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint: tel.Endpoint,
		APIKey:   tel.APIKey,
		Dataset:  tel.Dataset,
	})
	if err != nil {
		// Continue without telemetry - game still works
		logger.Warn("telemetry setup failed, running without observability", "error", err)
		return telemetry.NoopTracer(), noop
	}
	return telemetry.Tracer("game"), shutdown
}

// waitForKey holds the final score on screen until a key is pressed.
func waitForKey(screen *ui.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
