package bootstrap

import (
	"qr-smart-parking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
