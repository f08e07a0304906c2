package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name      string
		actual    int64
		offer     int64
		wantPct   int
		wantSaved int64
	}{
		{"standard discount", 100, 40, 60, 60},
		{"free category", 0, 0, 0, 0},
		{"zero actual with offer", 0, 50, 0, 0},
		{"no discount", 500, 500, 0, 0},
		{"offer above actual clamps to zero", 300, 400, 0, 0},
		{"rounding", 1000, 333, 67, 667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Category{
				ActualFee: decimal.NewFromInt(tt.actual),
				OfferFee:  decimal.NewFromInt(tt.offer),
			}
			assert.Equal(t, tt.wantPct, c.DiscountPercent())
			assert.True(t, c.DiscountAmount().Equal(decimal.NewFromInt(tt.wantSaved)),
				"discount amount = %s", c.DiscountAmount())
		})
	}
}
