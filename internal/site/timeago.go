package site

import (
	"fmt"
	"math"
	"time"
)

// TimeAgo formats how long ago date was relative to today, in the
// loosest human terms: days under a month, then months, then years.
// Month and year counts are both rounded (half away from zero) from
// the raw day difference, not chained off each other.
func TimeAgo(date, today time.Time) string {
	days := int(midnight(today).Sub(midnight(date)).Hours() / 24)

	if days == 0 {
		return "today"
	}
	if days == 1 {
		return "yesterday"
	}
	if days < 30 {
		return fmt.Sprintf("%d days ago", days)
	}

	months := int(math.Round(float64(days) / 30.0))
	if months == 1 {
		return "1 month ago"
	}
	if months < 12 {
		return fmt.Sprintf("%d months ago", months)
	}

	years := int(math.Round(float64(days) / 365.0))
	if years == 1 {
		return "1 year ago"
	}
	return fmt.Sprintf("%d years ago", years)
}

// midnight truncates a time to its calendar date in UTC so the day
// difference counts whole calendar days.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
