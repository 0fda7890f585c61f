// Package main is the entry point of the tuition desk console.
//
// The desk reads tutors, students and lesson bookings from stdin, then prints
// a lesson summary for one student and the reviews for one tutor. Everything
// lives in memory for the duration of the run.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tuitiondesk/tuition-desk/config"
	"github.com/tuitiondesk/tuition-desk/internal/application/tuition"
	"github.com/tuitiondesk/tuition-desk/internal/domain/shared"
	"github.com/tuitiondesk/tuition-desk/internal/infrastructure/messaging"
	"github.com/tuitiondesk/tuition-desk/internal/infrastructure/persistence/memory"
	"github.com/tuitiondesk/tuition-desk/internal/interface/console"
	"github.com/tuitiondesk/tuition-desk/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. Configuration
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. Logging
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting tuition desk",
		"name", cfg.App.Name,
		"env", cfg.App.Environment,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. Event bus
	// ─────────────────────────────────────────────────────────────────────────
	busConfig := messaging.DefaultInMemoryEventBusConfig()
	busConfig.Logger = log
	bus := messaging.NewInMemoryEventBus(busConfig)
	defer func() {
		m := bus.Metrics().Snapshot()
		log.Debug("event bus closing",
			"published", m.TotalPublished,
			"handler_failures", m.HandlerFailures,
		)
		_ = bus.Close()
	}()

	if err := bus.SubscribeAll(eventLogger(log)); err != nil {
		return fmt.Errorf("failed to subscribe event logger: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. Registries and use cases
	// ─────────────────────────────────────────────────────────────────────────
	sys := tuition.New(tuition.Dependencies{
		Tutors:   memory.NewTutorRegistry(),
		Students: memory.NewStudentRegistry(),
		Events:   bus,
		Logger:   log,
	})

	// ─────────────────────────────────────────────────────────────────────────
	// 5. Console session
	// ─────────────────────────────────────────────────────────────────────────
	session := console.NewSession(sys, os.Stdin, os.Stdout, console.Options{
		EchoPrompts:   cfg.Console.EchoPrompts || console.IsInteractive(os.Stdin),
		ReviewPrompts: cfg.Console.ReviewPrompts,
		SubjectLabels: cfg.Console.SubjectLabels,
		Logger:        log,
	})

	err = session.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, console.ErrInputEnded):
		log.Warn("input ended before the session finished")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("session interrupted")
		return nil
	default:
		return err
	}
}

// setupLogger configures structured logging on stderr.
func setupLogger(cfg *config.Config) *slog.Logger {
	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: logger.Format(cfg.Log.Format),
		Output: os.Stderr,
	})
	slog.SetDefault(log)
	return log
}

// eventLogger logs every domain event at debug level.
func eventLogger(log *slog.Logger) shared.EventHandler {
	return func(e shared.Event) error {
		attrs := []any{
			"event", string(e.EventType()),
			"aggregate_id", e.AggregateID(),
		}
		for k, v := range e.Payload() {
			attrs = append(attrs, k, v)
		}
		log.Debug("domain event", attrs...)
		return nil
	}
}
