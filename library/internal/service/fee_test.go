package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOverdueMetrics(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		reference time.Time
		wantDays  int
		wantFee   float64
	}{
		{
			name:      "reference before due",
			reference: due.AddDate(0, 0, -1),
			wantDays:  0,
			wantFee:   0,
		},
		{
			name:      "reference equals due",
			reference: due,
			wantDays:  0,
			wantFee:   0,
		},
		{
			name:      "later same calendar day",
			reference: due.Add(5 * time.Hour),
			wantDays:  0,
			wantFee:   0,
		},
		{
			name:      "3 days overdue",
			reference: due.AddDate(0, 0, 3),
			wantDays:  3,
			wantFee:   1.50,
		},
		{
			name:      "7 days overdue",
			reference: due.AddDate(0, 0, 7),
			wantDays:  7,
			wantFee:   3.50,
		},
		{
			name:      "10 days overdue",
			reference: due.AddDate(0, 0, 10),
			wantDays:  10,
			wantFee:   6.50,
		},
		{
			name:      "40 days overdue hits the cap",
			reference: due.AddDate(0, 0, 40),
			wantDays:  40,
			wantFee:   15.00,
		},
		{
			name:      "time of day ignored",
			reference: time.Date(2024, 3, 4, 0, 30, 0, 0, time.UTC),
			wantDays:  3,
			wantFee:   1.50,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			days, fee := overdueMetrics(due, tt.reference)
			require.Equal(t, tt.wantDays, days)
			require.Equal(t, tt.wantFee, fee)
		})
	}
}

func TestOverdueMetrics_SpringForward(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// the 23-hour DST day must still count as one full calendar day
	due := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	days, fee := overdueMetrics(due, due.AddDate(0, 0, 1))
	require.Equal(t, 1, days)
	require.Equal(t, 0.50, fee)
}

func TestRound2(t *testing.T) {
	t.Parallel()
	// 6.505 is stored as 6.50499...; rounding follows the decimal value
	require.Equal(t, 6.5, round2(6.505))
	require.Equal(t, 6.51, round2(6.5051))
	require.Equal(t, 1.5, round2(1.5))
	require.Equal(t, 15.0, round2(15.0))
}

func TestValidatePatronID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		patronID       string
		wantOK         bool
		wantNormalized string
	}{
		{"valid", "123456", true, "123456"},
		{"valid with spaces", " 123456 ", true, "123456"},
		{"empty", "", false, ""},
		{"whitespace only", "   ", false, ""},
		{"too short", "12345", false, "12345"},
		{"too long", "1234567", false, "1234567"},
		{"non digits", "12345a", false, "12345a"},
		{"negative", "-12345", false, "-12345"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, normalized, msg := validatePatronID(tt.patronID)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantNormalized, normalized)
			if !tt.wantOK {
				require.Equal(t, "Invalid patron ID. Must be exactly 6 digits.", msg)
			} else {
				require.Empty(t, msg)
			}
		})
	}
}
