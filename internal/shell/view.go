package shell

import (
	"time"

	"bullsharks/internal/display"
	"bullsharks/internal/leaderboard"
)

// View is what a front end draws for one state. Exactly one of the three
// parts is meaningful, selected by Kind.
type View struct {
	Kind    Kind
	Loading string            // KindLoading
	Error   string            // KindFailed: full message with lead-in
	Board   leaderboard.Board // KindLoaded
}

// Render builds the view of s, ranking loaded records against now.
func Render(s State, now time.Time) View {
	switch st := s.(type) {
	case Loaded:
		return View{Kind: KindLoaded, Board: leaderboard.Build(st.Activities, now)}
	case Failed:
		return View{Kind: KindFailed, Error: display.ErrorMessage(st.Message)}
	default:
		return View{Kind: KindLoading, Loading: display.Loading}
	}
}
