package bootstrap

import (
	"smart-parking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JournalModule,
	components.UseCaseModule,
	components.HandlerModule,
)
