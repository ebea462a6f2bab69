package format

import (
	"fmt"
	"strings"

	"bullsharks/internal/display"
	"bullsharks/internal/leaderboard"
)

// Leaderboard renders a board as a titled ranking table, or the no-data
// message when nobody ran in the window.
func Leaderboard(b leaderboard.Board, m Mode) string {
	var sb strings.Builder
	switch m {
	case Markdown:
		fmt.Fprintf(&sb, "## %s\n\n", display.Title)
	default:
		fmt.Fprintf(&sb, "%s\n\n", display.Title)
	}

	if b.Empty() {
		sb.WriteString(display.NoData)
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(display.Subtitle)
	sb.WriteString("\n\n")

	sb.WriteString(rankingTable(b.Rows, m))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "\n%s since %s\n", display.Activities(b.Considered), b.WindowStart.Format("Mon Jan 2 15:04"))

	if b.Skipped > 0 {
		fmt.Fprintf(&sb, "\n(%d with an unreadable date left out)\n", b.Skipped)
	}
	return sb.String()
}
