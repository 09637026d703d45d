package service

import (
	"strconv"
	"strings"
	"time"
)

const (
	loanPeriodDays = 14

	// a patron may hold this many open loans before the next borrow is blocked
	borrowLimit = 5

	dailyFee           = 0.50
	extendedDailyFee   = 1.00
	extendedAfterDays  = 7
	feeCap             = 15.00
	msgInvalidPatronID = "Invalid patron ID. Must be exactly 6 digits."
)

// validatePatronID trims the input and accepts exactly 6 decimal digits.
// It never fails hard; callers surface the message as-is.
func validatePatronID(patronID string) (bool, string, string) {
	normalized := strings.TrimSpace(patronID)
	if normalized == "" || !isDigits(normalized) || len(normalized) != 6 {
		return false, normalized, msgInvalidPatronID
	}
	return true, normalized, ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// overdueMetrics computes whole calendar days overdue and the tiered fee:
// $0.50/day for the first 7 days, $1.00/day after, capped at $15.00.
// Time-of-day is ignored when counting days.
func overdueMetrics(dueDate, reference time.Time) (int, float64) {
	if !reference.After(dueDate) {
		return 0, 0
	}
	days := int(truncateToDay(reference).Sub(truncateToDay(dueDate)) / (24 * time.Hour))
	if days <= 0 {
		return 0, 0
	}

	firstSeven := days
	if firstSeven > extendedAfterDays {
		firstSeven = extendedAfterDays
	}
	additional := days - extendedAfterDays
	if additional < 0 {
		additional = 0
	}

	fee := float64(firstSeven)*dailyFee + float64(additional)*extendedDailyFee
	if fee > feeCap {
		fee = feeCap
	}
	return days, round2(fee)
}

// truncateToDay maps t to its calendar date at midnight UTC, so differences
// between two truncated times are exact multiples of 24h even across DST.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// round2 rounds to cents based on the decimal representation of v, so a
// value stored just below x.xx5 rounds down rather than up.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}
