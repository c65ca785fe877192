package legacy

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"

	"qr-smart-parking/internal/infra"
	"qr-smart-parking/internal/infra/store"
)

// DB is the subset of *sqlx.DB the legacy tier uses.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

const (
	insertSpot = `INSERT INTO parking_spots (vehicle_number, status, entry_time, amount)
VALUES ($1, $2, $3::timestamp, $4::numeric)`

	selectSpots = `SELECT spot_id, vehicle_number, status,
  COALESCE(to_char(entry_time, 'YYYY-MM-DD HH24:MI:SS'), '') AS entry_time,
  COALESCE(to_char(exit_time, 'YYYY-MM-DD HH24:MI:SS'), '') AS exit_time,
  COALESCE(to_char(amount, 'FM999999990.00'), '') AS amount
FROM parking_spots
ORDER BY spot_id`

	updateSpotStatus = `UPDATE parking_spots SET status = $1, exit_time = NOW()
WHERE vehicle_number = $2 AND status = 'Booked'`
)

type spotRow struct {
	SpotID        int64  `db:"spot_id"`
	VehicleNumber string `db:"vehicle_number"`
	Status        string `db:"status"`
	EntryTime     string `db:"entry_time"`
	ExitTime      string `db:"exit_time"`
	Amount        string `db:"amount"`
}

// Repository is the legacy tier. Its table has no booking id, owner or
// duration columns, so those are dropped on insert and blank on read.
type Repository struct {
	db     DB
	logger *slog.Logger
}

var _ store.LegacyTier = (*Repository)(nil)

func NewRepository(db DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Insert(ctx context.Context, rec store.Record) error {
	_, err := r.db.ExecContext(ctx, insertSpot, rec.VehicleNumber, rec.Status, rec.InTime, rec.Amount)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to insert legacy spot", err)
	}
	return nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]store.Record, error) {
	var rows []spotRow
	if err := r.db.SelectContext(ctx, &rows, selectSpots); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to fetch legacy spots", err)
	}
	records := make([]store.Record, len(rows))
	for i, row := range rows {
		records[i] = toRecord(row)
	}
	return records, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, vehicleNumber, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateSpotStatus, status, vehicleNumber)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to update legacy spot", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read affected rows", err)
	}
	return n > 0, nil
}

func toRecord(row spotRow) store.Record {
	return store.Record{
		BookingID:     store.PlaceholderID,
		VehicleNumber: row.VehicleNumber,
		SlotNumber:    strconv.FormatInt(row.SpotID, 10),
		InTime:        row.EntryTime,
		Amount:        row.Amount,
		Status:        row.Status,
	}
}
