package primary

import (
	"context"
	"log/slog"

	"qr-smart-parking/internal/infra"
	"qr-smart-parking/internal/infra/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	insertBooking = `INSERT INTO parking_spots
  (booking_id, vehicle_number, spot_number, name, phone, in_time, duration, amount, status)
VALUES ($1, $2, $3, $4, $5, $6::text::timestamp, $7, $8::text::numeric, $9)`

	selectColumns = `SELECT booking_id, vehicle_number, spot_number, name, phone,
  to_char(in_time, 'YYYY-MM-DD HH24:MI:SS') AS in_time,
  duration,
  to_char(amount, 'FM999999990.00') AS amount,
  status
FROM parking_spots`

	selectAll  = selectColumns + ` ORDER BY in_time, booking_id`
	selectByID = selectColumns + ` WHERE booking_id = $1`

	updateStatus = `UPDATE parking_spots SET status = $2 WHERE booking_id = $1`
)

// Repository is the primary tier over the unified parking_spots table.
type Repository struct {
	db     DBTX
	logger *slog.Logger
}

var _ store.PrimaryTier = (*Repository)(nil)

func NewRepository(db DBTX, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Insert(ctx context.Context, rec store.Record) error {
	_, err := r.db.Exec(ctx, insertBooking,
		rec.BookingID, rec.VehicleNumber, rec.SlotNumber, rec.Name, rec.Phone,
		rec.InTime, rec.Duration, rec.Amount, rec.Status)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to insert booking", err)
	}
	return nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]store.Record, error) {
	rows, err := r.db.Query(ctx, selectAll)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to fetch bookings", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[store.Record])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to scan bookings", err)
	}
	return records, nil
}

func (r *Repository) FindByID(ctx context.Context, bookingID string) (store.Record, error) {
	rows, err := r.db.Query(ctx, selectByID, bookingID)
	if err != nil {
		return store.Record{}, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to find booking", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[store.Record])
	if err != nil {
		return store.Record{}, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to find booking", err)
	}
	return rec, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, bookingID, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, updateStatus, bookingID, status)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}
