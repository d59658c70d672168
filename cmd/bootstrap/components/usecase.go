package components

import (
	"log/slog"

	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/idgen"
	"smart-parking/internal/usecase/parking"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseParkingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewUUIDGenerator,
)

var usecaseParkingModule = fx.Module("usecase/parking",
	fx.Provide(
		NewParkingManager,
		func(m *parking.Manager) parking.Commands { return m },
		func(m *parking.Manager) parking.Queries { return m },
	),
)

func NewParkingManager(
	cfg config.Config,
	clk clock.Clock,
	ids idgen.Generator,
	publisher parking.EventPublisher,
	logger *slog.Logger,
) (*parking.Manager, error) {
	return parking.NewManager(parking.Deps{
		Clock:     clk,
		IDs:       ids,
		Publisher: publisher,
		Logger:    logger,
	}, parking.LayoutFromConfig(cfg.Parking))
}
