// Package format renders the leaderboard for terminal and Markdown output.
package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bullsharks/internal/display"
	"bullsharks/internal/leaderboard"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Box-drawn terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps a flag value ("ascii", "markdown", "md") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("unknown table format %q (want ascii or markdown)", s)
	}
}

// athleteWidth wraps long athlete names in the terminal table.
const athleteWidth = 32

// rankingTable renders rows as Rank | Athlete | Distance (km) | Activities.
// Rows are expected in board order; rank labels come from the row index.
func rankingTable(rows []leaderboard.Summary, m Mode) string {
	w := table.NewWriter()
	header := make(table.Row, len(display.Columns))
	for i, c := range display.Columns {
		header[i] = c
	}
	w.AppendHeader(header)
	for i, s := range rows {
		w.AppendRow(table.Row{
			display.Rank(i),
			s.AthleteName,
			display.Kilometers(s.TotalKilometers),
			s.ActivityCount,
		})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 2, WidthMax: athleteWidth},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	if m == Markdown {
		return w.RenderMarkdown()
	}
	w.SetStyle(table.StyleLight)
	return w.Render()
}
