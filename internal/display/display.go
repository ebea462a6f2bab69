// Package display provides the human-facing words of the leaderboard.
//
// Rule: numbers are for machines, words are for humans.
// Every front end (terminal, TUI, web, MCP) takes its copy and labels
// from here so the views read the same everywhere.
package display

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Copy ---

const (
	Title     = "Weekly Leaderboard"
	Subtitle  = "Top runners from the past 7 days"
	NoData    = "No running activities found in the past week."
	Loading   = "Reeling in your data..."
	ErrorLead = "Oops! Something went wrong: "
	TryAgain  = "Try Again"
	Brand     = "Bullsharks"
)

// Column headers of the ranking table.
var Columns = []string{"Rank", "Athlete", "Distance (km)", "Activities"}

// --- Ranks ---

var medals = []string{"🥇", "🥈", "🥉"}

// Rank returns the label for the 0-based position i: a medal for the
// podium, "#N" below it.
func Rank(i int) string {
	if i >= 0 && i < len(medals) {
		return medals[i]
	}
	return "#" + strconv.Itoa(i+1)
}

// Podium reports whether position i gets a medal.
func Podium(i int) bool { return i >= 0 && i < len(medals) }

// --- Quantities ---

// Kilometers formats a distance with two decimals, e.g. "8.00".
func Kilometers(km float64) string {
	return strconv.FormatFloat(km, 'f', 2, 64)
}

// Activities formats an activity count, e.g. "1 activity", "3 activities".
func Activities(n int) string {
	if n == 1 {
		return "1 activity"
	}
	return fmt.Sprintf("%d activities", n)
}

// ErrorMessage prefixes msg with the error lead-in.
func ErrorMessage(msg string) string {
	return ErrorLead + strings.TrimSpace(msg)
}
