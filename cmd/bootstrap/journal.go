package bootstrap

import (
	"context"
	"log/slog"

	"smart-parking/internal/infra/journal"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/parking"

	"go.uber.org/fx"
)

var JournalModule = fx.Module("journal",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a no-op publisher unless the journal is enabled.
// With the postgres driver the table is migrated on start; the dispatcher is
// drained before the pool closes on stop.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (parking.EventPublisher, error) {
	if !cfg.Journal.Enabled {
		logger.Info("parking event journal disabled")
		return parking.NopPublisher{}, nil
	}

	var (
		store   journal.Store
		migrate func(context.Context) error
	)
	switch cfg.Journal.Driver {
	case "memory":
		store = journal.NewMemoryStore()
	default:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		pg := journal.NewPostgresStore(pool, logger)
		store, migrate = pg, pg.Migrate
	}

	dispatcher := journal.NewDispatcher(store, cfg.Journal.BufferSize, cfg.Journal.WriteTimeout, logger)
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if migrate != nil {
				if err := migrate(ctx); err != nil {
					cancel()
					return err
				}
			}
			go dispatcher.Run(runCtx)
			logger.Info("parking event journal started",
				slog.String("driver", cfg.Journal.Driver),
				slog.Int("buffer_size", cfg.Journal.BufferSize),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer cancel()
			err := dispatcher.Close(ctx)
			stats := dispatcher.Stats()
			logger.Info("parking event journal stopped",
				slog.Uint64("written", stats.Written),
				slog.Uint64("failed", stats.Failed),
				slog.Uint64("dropped", stats.Dropped),
			)
			return err
		},
	})

	return dispatcher, nil
}
