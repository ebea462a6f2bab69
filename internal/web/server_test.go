package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"bullsharks/internal/activity"
	"bullsharks/internal/leaderboard"
	"bullsharks/internal/shell"
	"bullsharks/internal/source"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func today(id, name string, meters float64) activity.Activity {
	return activity.Activity{
		ID:          id,
		Date:        fixedNow.Add(-2 * time.Hour).Format(time.RFC3339),
		AthleteName: activity.String(name),
		Distance:    activity.Float(meters),
	}
}

func newServer(f shell.Fetcher) *httptest.Server {
	s := New(f, "", WithClock(func() time.Time { return fixedNow }))
	return httptest.NewServer(s.Handler())
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func okFetcher(records ...activity.Activity) shell.Fetcher {
	return shell.FetcherFunc(func(context.Context) ([]activity.Activity, error) { return records, nil })
}

func TestPage_Loaded(t *testing.T) {
	srv := newServer(okFetcher(
		today("1", "Alice", 5000),
		today("2", "Alice", 3000),
		today("3", "Bob", 10000),
		today("4", "Cara", 2000),
		today("5", "Dev", 1000),
	))
	defer srv.Close()

	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	for _, want := range []string{"Weekly Leaderboard", "Top runners from the past 7 days", "🥇", "🥈", "🥉", "#4", "10.00", "8.00", `leaderboard-row podium`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in page", want)
		}
	}
	if strings.Index(body, "Bob") > strings.Index(body, "Alice") {
		t.Error("Bob should rank above Alice")
	}
	if strings.Contains(body, "Oops!") || strings.Contains(body, `<p class="no-data">`) {
		t.Error("loaded page shows another state")
	}
}

func TestPage_Empty(t *testing.T) {
	srv := newServer(okFetcher())
	defer srv.Close()

	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !strings.Contains(body, "No running activities found in the past week.") {
		t.Error("expected no-data message")
	}
	if strings.Contains(body, "leaderboard-table") {
		t.Error("table rendered for empty board")
	}
}

func TestPage_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()
	client, err := source.New(upstream.URL, source.WithHTTPClient(upstream.Client()))
	if err != nil {
		t.Fatal(err)
	}

	srv := newServer(client)
	defer srv.Close()

	code, body := get(t, srv.URL+"/")
	if code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", code)
	}
	for _, want := range []string{"Oops! Something went wrong: Failed to fetch activities: Internal Server Error", "Try Again", `action="/"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in page:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Weekly Leaderboard") {
		t.Error("leaderboard rendered on failure")
	}
}

func TestPage_EscapesNames(t *testing.T) {
	srv := newServer(okFetcher(today("1", "<script>x</script>", 1000)))
	defer srv.Close()

	_, body := get(t, srv.URL+"/")
	if strings.Contains(body, "<script>x</script>") {
		t.Error("athlete name not escaped")
	}
}

func TestBoard_JSON(t *testing.T) {
	srv := newServer(okFetcher(today("1", "Alice", 5000), today("2", "Bob", 10000)))
	defer srv.Close()

	code, body := get(t, srv.URL+"/api/leaderboard")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var b leaderboard.Board
	if err := json.Unmarshal([]byte(body), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []leaderboard.Summary{
		{AthleteName: "Bob", TotalKilometers: 10, ActivityCount: 1},
		{AthleteName: "Alice", TotalKilometers: 5, ActivityCount: 1},
	}
	if diff := cmp.Diff(want, b.Rows); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
	if b.Considered != 2 {
		t.Errorf("considered = %d", b.Considered)
	}
}

func TestBoard_Error(t *testing.T) {
	srv := newServer(shell.FetcherFunc(func(context.Context) ([]activity.Activity, error) {
		return nil, errors.New("Failed to fetch activities: Service Unavailable")
	}))
	defer srv.Close()

	code, body := get(t, srv.URL+"/api/leaderboard")
	if code != http.StatusBadGateway {
		t.Errorf("status = %d", code)
	}
	if strings.TrimSpace(body) != `{"error":"Failed to fetch activities: Service Unavailable"}` {
		t.Errorf("body = %q", body)
	}
}

func TestHealth(t *testing.T) {
	srv := newServer(okFetcher())
	defer srv.Close()
	code, body := get(t, srv.URL+"/health")
	if code != http.StatusOK || strings.TrimSpace(body) != `{"status":"ok"}` {
		t.Errorf("health = %d %q", code, body)
	}
}

func TestLoad_ClientGoneDiscardsResult(t *testing.T) {
	tests := []struct {
		name    string
		fetcher func(cancel context.CancelFunc) shell.Fetcher
	}{
		{
			// The fetch notices the cancellation and fails with ctx.Err().
			name: "context-aware fetcher",
			fetcher: func(cancel context.CancelFunc) shell.Fetcher {
				return shell.FetcherFunc(func(ctx context.Context) ([]activity.Activity, error) {
					cancel()
					<-ctx.Done()
					return nil, ctx.Err()
				})
			},
		},
		{
			// The fetch ignores ctx and resolves successfully after the client left.
			name: "context-blind fetcher",
			fetcher: func(cancel context.CancelFunc) shell.Fetcher {
				return shell.FetcherFunc(func(context.Context) ([]activity.Activity, error) {
					cancel()
					return []activity.Activity{today("1", "Alice", 1000)}, nil
				})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				ctx, cancel := context.WithCancel(context.Background())
				h := New(tt.fetcher(cancel), "").Handler()
				for _, path := range []string{"/", "/api/leaderboard"} {
					rec := httptest.NewRecorder()
					h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx))
					if rec.Body.Len() != 0 {
						t.Fatalf("GET %s wrote a response after the client left: %d %q", path, rec.Code, rec.Body.String())
					}
				}
				cancel()
			}
		})
	}
}

func TestUpstreamClient_ClientGone(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer upstream.Close()
	client, err := source.New(upstream.URL, source.WithHTTPClient(upstream.Client()))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	rec := httptest.NewRecorder()
	New(client, "").Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
	if rec.Body.Len() != 0 {
		t.Errorf("page written after the client left: %d %q", rec.Code, rec.Body.String())
	}
}
