package analytics

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultDays = 14
	MaxDays     = 365

	dateLayout = "02 Jan 2006"
	day        = 24 * time.Hour
)

type (
	DailySignups struct {
		Date     string `json:"date"`
		DayStart int64  `json:"day_start"`
		Signups  int    `json:"signups"`
	}

	UserStats struct {
		CurrentTotalUsers int             `json:"current_total_users"`
		DailySignups      []*DailySignups `json:"daily_signups"`
	}
)

// Cutoffs returns now followed by the last days UTC midnights, newest first.
func Cutoffs(now time.Time, days int) []int64 {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	cutoffs := make([]int64, 0, days+1)
	cutoffs = append(cutoffs, now.Unix())
	for i := 0; i < days; i++ {
		cutoffs = append(cutoffs, midnight.Add(-time.Duration(i)*day).Unix())
	}
	return cutoffs
}

// Collect counts signups per day between consecutive cutoffs. Today's
// entry covers midnight up to now.
func Collect(ctx context.Context, users IUserCounter, now time.Time, days int) (*UserStats, error) {
	cutoffs := Cutoffs(now, days)

	stats := &UserStats{DailySignups: make([]*DailySignups, 0, days)}
	for i := 0; i+1 < len(cutoffs); i++ {
		n, err := users.CountCreatedBetween(ctx, cutoffs[i+1], cutoffs[i])
		if err != nil {
			return nil, fmt.Errorf("analytics: signups of day %d: %w", i, err)
		}
		stats.DailySignups = append(stats.DailySignups, &DailySignups{
			Date:     time.Unix(cutoffs[i+1], 0).UTC().Format(dateLayout),
			DayStart: cutoffs[i+1],
			Signups:  n,
		})
	}

	total, err := users.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: active users: %w", err)
	}
	stats.CurrentTotalUsers = total

	return stats, nil
}
