//go:build unit

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"qr-smart-parking/internal/infra"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/pkg/logging"
	storemock "qr-smart-parking/tests/mock/store"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func record(id, vehicle string) store.Record {
	return store.Record{
		BookingID:     id,
		VehicleNumber: vehicle,
		SlotNumber:    "A6",
		Name:          "Asha Rao",
		Phone:         "9876543210",
		InTime:        "2025-03-14 09:30:15",
		Duration:      "2 hrs",
		Amount:        "80.00",
		Status:        "Booked",
	}
}

type tiers struct {
	primary *storemock.MockPrimaryTier
	legacy  *storemock.MockLegacyTier
	store   *store.Store
}

func newTiers(t *testing.T) tiers {
	ctrl := gomock.NewController(t)
	primary := storemock.NewMockPrimaryTier(ctrl)
	legacy := storemock.NewMockLegacyTier(ctrl)
	return tiers{
		primary: primary,
		legacy:  legacy,
		store:   store.New(primary, legacy, time.Second, logging.Discard()),
	}
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	rec := record("BK100", "KA01AB1234")

	t.Run("primary accepts", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().Insert(gomock.Any(), rec).Return(nil)

		require.NoError(t, tt.store.Insert(ctx, rec))
		_, ok := tt.store.FindByID("BK100")
		assert.False(t, ok)
	})

	t.Run("falls back to legacy", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().Insert(gomock.Any(), rec).Return(errConnRefused)
		tt.legacy.EXPECT().Insert(gomock.Any(), rec).Return(nil)

		require.NoError(t, tt.store.Insert(ctx, rec))
		_, ok := tt.store.FindByID("BK100")
		assert.False(t, ok)
	})

	t.Run("both remote tiers down keeps the record in memory", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().Insert(gomock.Any(), rec).Return(errConnRefused)
		tt.legacy.EXPECT().Insert(gomock.Any(), rec).Return(errConnRefused)
		tt.primary.EXPECT().FetchAll(gomock.Any()).Return(nil, errConnRefused)
		tt.legacy.EXPECT().FetchAll(gomock.Any()).Return(nil, errConnRefused)

		require.NoError(t, tt.store.Insert(ctx, rec))

		got := tt.store.FetchAll(ctx)
		assert.Equal(t, store.Unavailable, got.Source)
		if diff := cmp.Diff([]store.Record{rec}, got.Records); diff != "" {
			t.Errorf("FetchAll() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("slow primary is abandoned after the tier timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := storemock.NewMockPrimaryTier(ctrl)
		legacy := storemock.NewMockLegacyTier(ctrl)
		s := store.New(primary, legacy, 20*time.Millisecond, logging.Discard())

		primary.EXPECT().Insert(gomock.Any(), rec).DoAndReturn(func(ctx context.Context, _ store.Record) error {
			<-ctx.Done()
			return ctx.Err()
		})
		legacy.EXPECT().Insert(gomock.Any(), rec).Return(nil)

		start := time.Now()
		require.NoError(t, s.Insert(ctx, rec))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("invalid record", func(t *testing.T) {
		tt := newTiers(t)
		assert.ErrorIs(t, tt.store.Insert(ctx, record("", "V1")), store.ErrInvalidRecord)
		assert.ErrorIs(t, tt.store.Insert(ctx, record("BK1", "")), store.ErrInvalidRecord)
	})
}

func TestStore_FetchAll(t *testing.T) {
	ctx := context.Background()
	primaryRows := []store.Record{record("BK100", "V1"), record("BK205", "V2")}
	legacyRows := []store.Record{{BookingID: store.PlaceholderID, VehicleNumber: "V9", SlotNumber: "1", Status: "Booked"}}

	tests := []struct {
		name   string
		setup  func(tiers)
		source store.Source
		want   []store.Record
	}{
		{
			name: "primary rows win",
			setup: func(tt tiers) {
				tt.primary.EXPECT().FetchAll(gomock.Any()).Return(primaryRows, nil)
			},
			source: store.Tier1Rows,
			want:   primaryRows,
		},
		{
			name: "empty primary reads legacy",
			setup: func(tt tiers) {
				tt.primary.EXPECT().FetchAll(gomock.Any()).Return(nil, nil)
				tt.legacy.EXPECT().FetchAll(gomock.Any()).Return(legacyRows, nil)
			},
			source: store.Tier2Rows,
			want:   legacyRows,
		},
		{
			name: "failed primary reads legacy",
			setup: func(tt tiers) {
				tt.primary.EXPECT().FetchAll(gomock.Any()).Return(nil, errConnRefused)
				tt.legacy.EXPECT().FetchAll(gomock.Any()).Return(nil, nil)
			},
			source: store.Tier2Rows,
			want:   []store.Record{},
		},
		{
			name: "empty primary and failed legacy is an empty primary answer",
			setup: func(tt tiers) {
				tt.primary.EXPECT().FetchAll(gomock.Any()).Return([]store.Record{}, nil)
				tt.legacy.EXPECT().FetchAll(gomock.Any()).Return(nil, errConnRefused)
			},
			source: store.Tier1Rows,
			want:   []store.Record{},
		},
		{
			name: "both failed reads memory",
			setup: func(tt tiers) {
				tt.primary.EXPECT().FetchAll(gomock.Any()).Return(nil, errConnRefused)
				tt.legacy.EXPECT().FetchAll(gomock.Any()).Return(nil, errConnRefused)
			},
			source: store.Unavailable,
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := newTiers(t)
			tc.setup(tt)

			got := tt.store.FetchAll(ctx)
			assert.Equal(t, tc.source, got.Source)
			if diff := cmp.Diff(tc.want, got.Records); diff != "" {
				t.Errorf("Records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_Offline(t *testing.T) {
	ctx := context.Background()
	s := store.New(nil, nil, time.Second, logging.Discard())

	for _, id := range []string{"BK310", "BK100", "BK205"} {
		require.NoError(t, s.Insert(ctx, record(id, "V-"+id)))
	}

	t.Run("find by id", func(t *testing.T) {
		got, ok := s.FindByID("BK205")
		require.True(t, ok)
		assert.Equal(t, "V-BK205", got.VehicleNumber)

		_, ok = s.FindByID("BK999")
		assert.False(t, ok)

		_, ok = s.FindByID("BK")
		assert.False(t, ok)
	})

	t.Run("fetch keeps insertion order", func(t *testing.T) {
		got := s.FetchAll(ctx)
		require.Equal(t, store.Unavailable, got.Source)
		ids := make([]string, 0, len(got.Records))
		for _, r := range got.Records {
			ids = append(ids, r.BookingID)
		}
		assert.Equal(t, []string{"BK310", "BK100", "BK205"}, ids)
	})

	t.Run("lookup falls back to memory", func(t *testing.T) {
		got, ok := s.Lookup(ctx, "BK100")
		require.True(t, ok)
		assert.Equal(t, "V-BK100", got.VehicleNumber)
	})

	t.Run("status update is applied in memory", func(t *testing.T) {
		rec, _ := s.FindByID("BK310")
		rec.Status = "CheckedOut"
		s.UpdateStatus(ctx, rec)

		got, ok := s.FindByID("BK310")
		require.True(t, ok)
		assert.Equal(t, "CheckedOut", got.Status)
		assert.Len(t, s.FetchAll(ctx).Records, 3)
	})
}

func TestStore_DuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s := store.New(nil, nil, time.Second, logging.Discard())

	// two bookings created in the same millisecond share an id
	require.NoError(t, s.Insert(ctx, record("BK1700000000000", "FIRST")))
	require.NoError(t, s.Insert(ctx, record("BK1700000000000", "SECOND")))

	got, ok := s.FindByID("BK1700000000000")
	require.True(t, ok)
	assert.Equal(t, "SECOND", got.VehicleNumber)
	assert.Len(t, s.FetchAll(ctx).Records, 2)
}

func TestStore_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("primary hit", func(t *testing.T) {
		tt := newTiers(t)
		rec := record("BK100", "V1")
		tt.primary.EXPECT().FindByID(gomock.Any(), "BK100").Return(rec, nil)

		got, ok := tt.store.Lookup(ctx, "BK100")
		require.True(t, ok)
		assert.Equal(t, rec, got)
	})

	t.Run("primary miss and empty memory", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().FindByID(gomock.Any(), "BK404").
			Return(store.Record{}, infra.RepositoryError{Kind: infra.KindNotFound})

		_, ok := tt.store.Lookup(ctx, "BK404")
		assert.False(t, ok)
	})

	t.Run("status written to memory wins over primary", func(t *testing.T) {
		tt := newTiers(t)
		closed := record("BK100", "V1")
		closed.Status = "CheckedOut"
		tt.primary.EXPECT().UpdateStatus(gomock.Any(), "BK100", "CheckedOut").Return(false, errConnRefused)
		tt.legacy.EXPECT().UpdateStatus(gomock.Any(), "V1", "CheckedOut").Return(false, errConnRefused)
		tt.store.UpdateStatus(ctx, closed)

		// primary is back but never saw the checkout
		tt.primary.EXPECT().FindByID(gomock.Any(), "BK100").Return(record("BK100", "V1"), nil)

		got, ok := tt.store.Lookup(ctx, "BK100")
		require.True(t, ok)
		if diff := cmp.Diff(closed, got); diff != "" {
			t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	rec := record("BK100", "KA01AB1234")
	rec.Status = "CheckedOut"

	t.Run("primary row updated", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().UpdateStatus(gomock.Any(), "BK100", "CheckedOut").Return(true, nil)
		tt.store.UpdateStatus(ctx, rec)
	})

	t.Run("legacy matched by vehicle", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().UpdateStatus(gomock.Any(), "BK100", "CheckedOut").Return(false, nil)
		tt.legacy.EXPECT().UpdateStatus(gomock.Any(), "KA01AB1234", "CheckedOut").Return(true, nil)
		tt.store.UpdateStatus(ctx, rec)

		_, ok := tt.store.FindByID("BK100")
		assert.False(t, ok)
	})

	t.Run("both down writes memory", func(t *testing.T) {
		tt := newTiers(t)
		tt.primary.EXPECT().UpdateStatus(gomock.Any(), "BK100", "CheckedOut").Return(false, errConnRefused)
		tt.legacy.EXPECT().UpdateStatus(gomock.Any(), "KA01AB1234", "CheckedOut").Return(false, errConnRefused)
		tt.store.UpdateStatus(ctx, rec)

		got, ok := tt.store.FindByID("BK100")
		require.True(t, ok)
		assert.Equal(t, "CheckedOut", got.Status)
	})
}
