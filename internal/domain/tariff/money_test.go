//go:build unit

package tariff_test

import (
	"testing"

	"qr-smart-parking/internal/domain/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "120.00", tariff.NewMoney(12000).String())
	assert.Equal(t, "0.05", tariff.NewMoney(5).String())
	assert.Equal(t, "-1.50", tariff.NewMoney(-150).String())
	assert.Equal(t, "3.50", tariff.NewMoney(100).Add(tariff.NewMoney(250)).String())
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "120.00", want: 12000},
		{in: "120", want: 12000},
		{in: "120.5", want: 12050},
		{in: " 7.25 ", want: 725},
		{in: "", wantErr: true},
		{in: "12.345", wantErr: true},
		{in: "12.", wantErr: true},
		{in: "-3.00", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tariff.ParseMoney(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, tariff.ErrInvalidMoney)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}
