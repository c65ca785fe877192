//go:build unit

package primary

import (
	"context"
	"testing"

	"qr-smart-parking/internal/infra"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/pkg/logging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

var sampleRecord = store.Record{
	BookingID:     "BK1741944615000",
	VehicleNumber: "KA01AB1234",
	SlotNumber:    "A6",
	Name:          "Asha Rao",
	Phone:         "9876543210",
	InTime:        "2025-03-14 09:30:15",
	Duration:      "2 hrs",
	Amount:        "80.00",
	Status:        "Booked",
}

func TestRepository_Insert(t *testing.T) {
	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:     "duplicate booking id",
			mockErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "deadline",
			mockErr:  context.DeadlineExceeded,
			wantKind: infra.KindTimeout,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			wantArgs := []any{
				sampleRecord.BookingID, sampleRecord.VehicleNumber, sampleRecord.SlotNumber,
				sampleRecord.Name, sampleRecord.Phone, sampleRecord.InTime,
				sampleRecord.Duration, sampleRecord.Amount, sampleRecord.Status,
			}
			db.On("Exec", mock.Anything, insertBooking, wantArgs).
				Return(pgconn.NewCommandTag("INSERT 0 1"), tt.mockErr)

			repo := NewRepository(db, logging.Discard())
			err := repo.Insert(context.Background(), sampleRecord)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		mockErr error
		want    bool
		wantErr bool
	}{
		{name: "row updated", tag: "UPDATE 1", want: true},
		{name: "no such booking", tag: "UPDATE 0", want: false},
		{name: "database error", tag: "", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, updateStatus, []any{"BK1", "CheckedOut"}).
				Return(pgconn.NewCommandTag(tt.tag), tt.mockErr)

			repo := NewRepository(db, logging.Discard())
			ok, err := repo.UpdateStatus(context.Background(), "BK1", "CheckedOut")

			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			db.AssertExpectations(t)
		})
	}
}

func TestRepository_QueryFailure(t *testing.T) {
	db := new(MockDBTX)
	db.On("Query", mock.Anything, selectAll, []any(nil)).Return(nil, assert.AnError)
	db.On("Query", mock.Anything, selectByID, []any{"BK1"}).Return(nil, pgx.ErrNoRows)

	repo := NewRepository(db, logging.Discard())

	_, err := repo.FetchAll(context.Background())
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = repo.FindByID(context.Background(), "BK1")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	db.AssertExpectations(t)
}
