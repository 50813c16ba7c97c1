package datetime

import (
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	cases := map[string]bool{
		"29-02-2024": true,
		"29-02-2025": false,
		"31-04-2024": false,
		"31-12-2024": true,
		"1-1-2024":   false,
		"2024-01-01": false,
		"":           false,
	}
	for in, want := range cases {
		if got := IsValidDate(in); got != want {
			t.Errorf("IsValidDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	cases := map[string]bool{
		"23-05-2024T16:00": true,
		"23-05-2024T23:59": true,
		"23-05-2024T24:00": false,
		"23-05-2024 16:00": false,
		"23-05-2024":       false,
	}
	for in, want := range cases {
		if got := IsValidDateTime(in); got != want {
			t.Errorf("IsValidDateTime(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	in := "07-11-2024T08:05"
	tm, err := ParseDateTime(in)
	if err != nil {
		t.Fatal(err)
	}
	if tm.Location() != time.Local {
		t.Errorf("location = %v, want Local", tm.Location())
	}
	if got := FormatDateTimeInput(tm); got != in {
		t.Errorf("input form = %q", got)
	}
	if got := FormatDateTime(tm); got != "07-11-2024 08:05" {
		t.Errorf("display form = %q", got)
	}
	d, err := ParseDate("07-11-2024")
	if err != nil || FormatDate(d) != "07-11-2024" {
		t.Errorf("date round trip: %v, %v", FormatDate(d), err)
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 5, 23, 0, 0, 0, 0, time.Local)
	if !SameDate(a, a.Add(23*time.Hour+59*time.Minute)) {
		t.Error("same day not matched")
	}
	if SameDate(a, a.Add(24*time.Hour)) || SameDate(a, a.Add(-time.Minute)) {
		t.Error("adjacent days matched")
	}
}
