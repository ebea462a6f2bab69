// Package leaderboard turns activity records into the weekly ranking.
// Everything here is pure: no I/O, no shared state, same input same output.
package leaderboard

import (
	"sort"
	"time"

	"bullsharks/internal/activity"
)

// Window is the trailing period a record must fall into to count.
const Window = 7 * 24 * time.Hour

// Summary aggregates one athlete's activities inside the window.
type Summary struct {
	AthleteName     string  `json:"athleteName"`
	TotalKilometers float64 `json:"totalKilometers"`
	ActivityCount   int     `json:"activityCount"`
}

// Board is the outcome of one render pass. Rows[0] is rank 1.
type Board struct {
	Rows        []Summary `json:"rows"`
	WindowStart time.Time `json:"windowStart"`
	GeneratedAt time.Time `json:"generatedAt"`
	Considered  int       `json:"considered"`
	Skipped     int       `json:"skipped"`
}

// Empty reports whether no athlete made it onto the board.
func (b Board) Empty() bool { return len(b.Rows) == 0 }

// FilterRecent keeps records dated at or after now-Window. There is no upper
// bound, so future-dated records pass. Records whose date does not parse
// are returned in skipped instead of being compared.
func FilterRecent(records []activity.Activity, now time.Time) (recent, skipped []activity.Activity) {
	cutoff := now.Add(-Window)
	for _, r := range records {
		when, err := r.When()
		if err != nil {
			skipped = append(skipped, r)
			continue
		}
		if !when.Before(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent, skipped
}

type tally struct {
	meters float64
	count  int
}

// Aggregate groups records by athlete, sums their distance and ranks the
// result by kilometers descending. Equal totals are ordered by athlete name.
func Aggregate(records []activity.Activity) []Summary {
	byAthlete := make(map[string]*tally)
	for _, r := range records {
		name := r.Athlete()
		t, ok := byAthlete[name]
		if !ok {
			t = &tally{}
			byAthlete[name] = t
		}
		t.meters += r.Meters()
		t.count++
	}

	out := make([]Summary, 0, len(byAthlete))
	for name, t := range byAthlete {
		out = append(out, Summary{
			AthleteName:     name,
			TotalKilometers: t.meters / 1000,
			ActivityCount:   t.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalKilometers != out[j].TotalKilometers {
			return out[i].TotalKilometers > out[j].TotalKilometers
		}
		return out[i].AthleteName < out[j].AthleteName
	})
	return out
}

// Build filters records to the window ending at now and ranks them.
func Build(records []activity.Activity, now time.Time) Board {
	recent, skipped := FilterRecent(records, now)
	return Board{
		Rows:        Aggregate(recent),
		WindowStart: now.Add(-Window),
		GeneratedAt: now,
		Considered:  len(recent),
		Skipped:     len(skipped),
	}
}
