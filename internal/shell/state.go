package shell

import "bullsharks/internal/activity"

// Kind names the variant of a State.
type Kind int

const (
	KindLoading Kind = iota
	KindLoaded
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindLoaded:
		return "loaded"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the load lifecycle of one shell. Exactly three variants exist:
// Loading, Loaded and Failed.
type State interface {
	Kind() Kind
	isState()
}

// Loading is the initial state, held while the fetch is in flight.
type Loading struct{}

// Loaded holds the records of a successful fetch.
type Loaded struct {
	Activities []activity.Activity
}

// Failed holds the display message of a failed fetch.
type Failed struct {
	Message string
}

func (Loading) Kind() Kind { return KindLoading }
func (Loaded) Kind() Kind  { return KindLoaded }
func (Failed) Kind() Kind  { return KindFailed }

func (Loading) isState() {}
func (Loaded) isState()  {}
func (Failed) isState()  {}

// Terminal reports whether s is Loaded or Failed.
func Terminal(s State) bool {
	return s.Kind() != KindLoading
}
