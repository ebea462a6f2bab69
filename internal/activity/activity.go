// Package activity defines the activity record served by the backend at
// /api/read. Records are decoded once and treated as read-only values.
package activity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// UnknownAthlete labels records whose athlete name is missing or empty.
const UnknownAthlete = "Unknown Athlete"

// ErrInvalidDate is returned by ParseDate for a date string no supported
// layout accepts.
var ErrInvalidDate = errors.New("invalid activity date")

// Activity is one recorded exercise session. Optional fields are nil when
// the backend sends null or omits them.
type Activity struct {
	ID                 string   `json:"id" yaml:"id"`
	Date               string   `json:"date" yaml:"date"`
	AthleteName        *string  `json:"athlete_name" yaml:"athlete_name"`
	ResourceState      *int64   `json:"resource_state" yaml:"resource_state"`
	Name               *string  `json:"name" yaml:"name"`
	Distance           *float64 `json:"distance" yaml:"distance"`                         // meters
	MovingTime         *int64   `json:"moving_time" yaml:"moving_time"`                   // seconds
	ElapsedTime        *int64   `json:"elapsed_time" yaml:"elapsed_time"`                 // seconds
	TotalElevationGain *float64 `json:"total_elevation_gain" yaml:"total_elevation_gain"` // meters
	SportType          *string  `json:"sport_type" yaml:"sport_type"`
	WorkoutType        *int64   `json:"workout_type" yaml:"workout_type"`
	DeviceName         *string  `json:"device_name" yaml:"device_name"`
}

// Athlete returns the display name used as the aggregation key.
func (a Activity) Athlete() string {
	if a.AthleteName == nil || *a.AthleteName == "" {
		return UnknownAthlete
	}
	return *a.AthleteName
}

// Meters returns the distance in meters, 0 when absent.
func (a Activity) Meters() float64 {
	if a.Distance == nil {
		return 0
	}
	return *a.Distance
}

// When parses the record's date. See ParseDate.
func (a Activity) When() (time.Time, error) {
	return ParseDate(a.Date)
}

// Layouts without a zone are read as UTC whatever the host zone is, so a
// window boundary does not move between machines. Backend dates carry Z.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an activity timestamp. It accepts RFC 3339 with or
// without fractional seconds, a zone-less date-time and a bare date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// String returns s as an optional field value.
func String(s string) *string { return &s }

// Float returns f as an optional field value.
func Float(f float64) *float64 { return &f }

// Int returns n as an optional field value.
func Int(n int64) *int64 { return &n }
