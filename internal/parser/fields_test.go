package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/datetime"
)

func TestIsNonZeroUnsignedInteger(t *testing.T) {
	cases := map[string]bool{
		"1":           true,
		"42":          true,
		"007":         true,
		"2147483647":  true,
		"2147483648":  false,
		"0":           false,
		"-1":          false,
		"+1":          false,
		"":            false,
		" 1":          false,
		"1 2":         false,
		"abc":         false,
		"1.0":         false,
	}
	for in, want := range cases {
		if got := IsNonZeroUnsignedInteger(in); got != want {
			t.Errorf("IsNonZeroUnsignedInteger(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("3")
	if err != nil {
		t.Fatal(err)
	}
	if idx.ZeroBased() != 2 || idx.OneBased() != 3 {
		t.Errorf("idx = %d/%d", idx.ZeroBased(), idx.OneBased())
	}
	_, err = ParseIndex("0")
	if !errors.Is(err, apperr.ErrInvalidValue) || err.Error() != MessageInvalidIndex {
		t.Errorf("err = %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 29-02-2024 ")
	if err != nil {
		t.Fatalf("leap day: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("date = %v", d)
	}
	for _, bad := range []string{"31-04-2024", "29-02-2025", "2024-02-01", "1-2-2024", "01-13-2024", ""} {
		if _, err := ParseDate(bad); !errors.Is(err, apperr.ErrInvalidValue) {
			t.Errorf("ParseDate(%q) err = %v", bad, err)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("23-05-2024T16:30")
	if err != nil {
		t.Fatal(err)
	}
	if got := datetime.FormatDateTimeInput(dt); got != "23-05-2024T16:30" {
		t.Errorf("round trip = %q", got)
	}
	if got := datetime.FormatDateTime(dt); got != "23-05-2024 16:30" {
		t.Errorf("display = %q", got)
	}
	for _, bad := range []string{"23-05-2024 16:30", "23-05-2024T24:00", "31-04-2024T10:00", "23-05-2024"} {
		if _, err := ParseDateTime(bad); err == nil {
			t.Errorf("ParseDateTime(%q) accepted", bad)
		}
	}
}

func TestParseTags(t *testing.T) {
	set, err := ParseTags([]string{"friend", " vip ", "friend"})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 || !set.Contains("vip") {
		t.Errorf("set = %s", set)
	}
	for _, bad := range []string{"", "two words", "a-b"} {
		if _, err := ParseTags([]string{bad}); !errors.Is(err, apperr.ErrConstraint) {
			t.Errorf("ParseTags(%q) err = %v", bad, err)
		}
	}
}

func TestParseMeetingRemark(t *testing.T) {
	if r, err := ParseMeetingRemark(" Lunch @ 12, bring docs! "); err != nil || r != "Lunch @ 12, bring docs!" {
		t.Errorf("r = %q, err = %v", r, err)
	}
	if r, err := ParseMeetingRemark(""); err != nil || r != "" {
		t.Errorf("empty remark: %q, %v", r, err)
	}
	if _, err := ParseMeetingRemark("café §"); err == nil {
		t.Error("unsafe characters accepted")
	}
}
