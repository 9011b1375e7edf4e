package engine_test

import (
	"testing"
	"time"

	"github.com/iho/splitledger/internal/engine"
)

func TestResolveBillingCycle(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		closingDay int
		want       time.Time
	}{
		{
			name:       "before closing day due next month",
			date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			closingDay: 15,
			want:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "after closing day due month after next",
			date:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			closingDay: 15,
			want:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "on closing day falls in current cycle",
			date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			closingDay: 15,
			want:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "december purchase rolls into next year",
			date:       time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
			closingDay: 10,
			want:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "unset closing day defaults to first",
			date:       time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			closingDay: 0,
			want:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "first of month with default closing day",
			date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			closingDay: 0,
			want:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ResolveBillingCycle(tt.date, tt.closingDay)
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
