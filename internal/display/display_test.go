package display

import "testing"

func TestRank(t *testing.T) {
	cases := []struct {
		i    int
		want string
	}{
		{0, "🥇"},
		{1, "🥈"},
		{2, "🥉"},
		{3, "#4"},
		{9, "#10"},
	}
	for _, tc := range cases {
		if got := Rank(tc.i); got != tc.want {
			t.Errorf("Rank(%d) = %q, want %q", tc.i, got, tc.want)
		}
	}
}

func TestPodium(t *testing.T) {
	for i, want := range []bool{true, true, true, false, false} {
		if got := Podium(i); got != want {
			t.Errorf("Podium(%d) = %v, want %v", i, got, want)
		}
	}
	if Podium(-1) {
		t.Error("Podium(-1) should be false")
	}
}

func TestKilometers(t *testing.T) {
	cases := []struct {
		km   float64
		want string
	}{
		{0, "0.00"},
		{8, "8.00"},
		{10.456, "10.46"},
		{0.001, "0.00"},
	}
	for _, tc := range cases {
		if got := Kilometers(tc.km); got != tc.want {
			t.Errorf("Kilometers(%v) = %q, want %q", tc.km, got, tc.want)
		}
	}
}

func TestActivities(t *testing.T) {
	if got := Activities(1); got != "1 activity" {
		t.Errorf("got %q", got)
	}
	if got := Activities(3); got != "3 activities" {
		t.Errorf("got %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(" Failed to fetch activities: Bad Gateway\n"); got != "Oops! Something went wrong: Failed to fetch activities: Bad Gateway" {
		t.Errorf("got %q", got)
	}
}
