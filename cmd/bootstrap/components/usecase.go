package components

import (
	"context"
	"log/slog"

	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/slot"
	"qr-smart-parking/internal/domain/tariff"
	"qr-smart-parking/internal/infra/qrcode"
	"qr-smart-parking/internal/pkg/clock"
	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/usecase"
	"qr-smart-parking/internal/usecase/scan"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseBookingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSlotPool,
	fx.Annotate(
		NewTariffSchedule,
		fx.As(new(tariff.Calculator)),
	),
	booking.NewFactory,
	func() *qrcode.Transport {
		return qrcode.NewTransport(qrcode.DefaultSize)
	},
	func(t *qrcode.Transport) usecase.TicketRenderer { return t },
	func(t *qrcode.Transport) scan.Reader { return t },
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		usecase.NewBookingService,
	),
	fx.Invoke(RestoreOccupancy),
)

func NewSlotPool(cfg config.Config) (*slot.Pool, error) {
	return slot.NewPool(slot.Layout(cfg.Parking.SlotPrefix, cfg.Parking.SlotCount), cfg.Parking.Occupied)
}

func NewTariffSchedule(cfg config.Config) (*tariff.Schedule, error) {
	return tariff.NewScheduleFromTable(cfg.Tariff.Bands, cfg.Tariff.DailyCapCents)
}

// RestoreOccupancy re-occupies slots held by stored bookings before the
// server starts taking requests.
func RestoreOccupancy(lc fx.Lifecycle, svc *usecase.BookingService, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := svc.Restore(ctx); err != nil {
				logger.Warn("Failed to restore slot occupancy", slog.String("error", err.Error()))
			}
			return nil
		},
	})
}
