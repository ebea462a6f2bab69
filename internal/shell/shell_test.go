package shell

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"bullsharks/internal/activity"
	"bullsharks/internal/leaderboard"
	"bullsharks/internal/source"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func records() []activity.Activity {
	return []activity.Activity{
		{ID: "1", Date: now.Format(time.RFC3339), AthleteName: activity.String("Alice"), Distance: activity.Float(5000)},
	}
}

func TestNew_StartsLoading(t *testing.T) {
	s := New(FetcherFunc(func(context.Context) ([]activity.Activity, error) { return nil, nil }))
	if s.State().Kind() != KindLoading {
		t.Errorf("initial state = %v", s.State().Kind())
	}
	if Terminal(s.State()) {
		t.Error("Loading must not be terminal")
	}
}

func TestStart_Loaded(t *testing.T) {
	s := New(FetcherFunc(func(context.Context) ([]activity.Activity, error) { return records(), nil }))
	var seen []Kind
	s.Subscribe(func(st State) { seen = append(seen, st.Kind()) })

	st := s.Start(context.Background())
	loaded, ok := st.(Loaded)
	if !ok {
		t.Fatalf("state = %T, want Loaded", st)
	}
	if diff := cmp.Diff(records(), loaded.Activities); diff != "" {
		t.Errorf("activities (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Kind{KindLoaded}, seen); diff != "" {
		t.Errorf("transitions (-want +got):\n%s", diff)
	}
}

func TestStart_HTTP500_Failed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	client, err := source.New(server.URL, source.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatal(err)
	}

	s := New(client)
	renders := 0
	s.Subscribe(func(st State) {
		renders++
		if st.Kind() == KindLoaded {
			t.Error("leaderboard rendered after a failed fetch")
		}
	})

	st := s.Start(context.Background())
	failed, ok := st.(Failed)
	if !ok {
		t.Fatalf("state = %T, want Failed", st)
	}
	if failed.Message == "" {
		t.Error("expected non-empty failure message")
	}
	if failed.Message != "Failed to fetch activities: Internal Server Error" {
		t.Errorf("message = %q", failed.Message)
	}
	if renders != 1 {
		t.Errorf("renders = %d, want 1", renders)
	}
}

func TestStart_OnlyOnce(t *testing.T) {
	calls := 0
	s := New(FetcherFunc(func(context.Context) ([]activity.Activity, error) {
		calls++
		return nil, errors.New("down")
	}))
	first := s.Start(context.Background())
	second := s.Start(context.Background())
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
	if first != second {
		t.Errorf("second Start changed state: %v -> %v", first, second)
	}
}

func TestClose_DiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	s := New(FetcherFunc(func(context.Context) ([]activity.Activity, error) {
		<-release
		return records(), nil
	}))
	notified := false
	s.Subscribe(func(State) { notified = true })

	var wg sync.WaitGroup
	var got State
	wg.Add(1)
	go func() {
		defer wg.Done()
		got = s.Start(context.Background())
	}()

	s.Close()
	close(release)
	wg.Wait()

	if notified {
		t.Error("observer called after Close")
	}
	if got.Kind() != KindLoading || s.State().Kind() != KindLoading {
		t.Errorf("state after close = %v / %v, want loading", got.Kind(), s.State().Kind())
	}
	if !s.Closed() {
		t.Error("Closed() = false")
	}
}

func TestStart_AfterCloseDoesNotFetch(t *testing.T) {
	s := New(FetcherFunc(func(context.Context) ([]activity.Activity, error) {
		t.Error("fetch after close")
		return nil, nil
	}))
	s.Close()
	if st := s.Start(context.Background()); st.Kind() != KindLoading {
		t.Errorf("state = %v", st.Kind())
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New(FetcherFunc(func(context.Context) ([]activity.Activity, error) { return nil, nil }))
	var a, b int
	unsubA := s.Subscribe(func(State) { a++ })
	s.Subscribe(func(State) { b++ })
	unsubA()
	unsubA()
	s.Start(context.Background())
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}
}

func TestMessage(t *testing.T) {
	if got := Message(nil); got != DefaultMessage {
		t.Errorf("Message(nil) = %q", got)
	}
	if got := Message(errors.New("  ")); got != DefaultMessage {
		t.Errorf("Message(blank) = %q", got)
	}
	if got := Message(errors.New("Failed to fetch activities: Bad Gateway")); got != "Failed to fetch activities: Bad Gateway" {
		t.Errorf("Message = %q", got)
	}
}

func TestRender(t *testing.T) {
	if v := Render(Loading{}, now); v.Kind != KindLoading || v.Loading != "Reeling in your data..." {
		t.Errorf("loading view = %+v", v)
	}
	if v := Render(Failed{Message: "boom"}, now); v.Kind != KindFailed || v.Error != "Oops! Something went wrong: boom" {
		t.Errorf("failed view = %+v", v)
	}
	v := Render(Loaded{Activities: records()}, now)
	if v.Kind != KindLoaded {
		t.Fatalf("loaded view kind = %v", v.Kind)
	}
	want := []leaderboard.Summary{{AthleteName: "Alice", TotalKilometers: 5, ActivityCount: 1}}
	if diff := cmp.Diff(want, v.Board.Rows); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
	if empty := Render(Loaded{}, now); !empty.Board.Empty() {
		t.Error("expected empty board for no activities")
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{KindLoading: "loading", KindLoaded: "loaded", KindFailed: "failed", Kind(9): "unknown"} {
		if k.String() != want {
			t.Errorf("%d.String() = %q", k, k.String())
		}
	}
}
