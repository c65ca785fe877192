package components

import (
	"qr-smart-parking/internal/handler"
	"qr-smart-parking/internal/handler/api"
	"qr-smart-parking/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(s *usecase.BookingService) api.BookingUseCase { return s },
		api.NewBookingHandler,
		api.NewScanHandler,
	),
	fx.Invoke(handler.NewRouter),
)
