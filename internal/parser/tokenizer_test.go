package parser

import (
	"errors"
	"slices"
	"testing"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/syntax"
)

func TestTokenize(t *testing.T) {
	am := Tokenize(" 1 n/Bob t/friend t/colleague", syntax.PrefixName, syntax.PrefixTag)
	if am.Preamble() != "1" {
		t.Errorf("preamble = %q, want %q", am.Preamble(), "1")
	}
	if v, ok := am.Value(syntax.PrefixName); !ok || v != "Bob" {
		t.Errorf("name = %q, %v", v, ok)
	}
	if got := am.AllValues(syntax.PrefixTag); !slices.Equal(got, []string{"friend", "colleague"}) {
		t.Errorf("tags = %v", got)
	}
	if am.Has(syntax.PrefixPhone) {
		t.Error("unregistered prefix reported present")
	}
}

func TestTokenize_PrefixNeedsLeadingWhitespace(t *testing.T) {
	am := Tokenize(" n/Alex p/123", syntax.PrefixName)
	if v, _ := am.Value(syntax.PrefixName); v != "Alex p/123" {
		t.Errorf("unregistered prefix must stay in value, got %q", v)
	}

	am = Tokenize(" mr/Lunch", syntax.PrefixRemark, syntax.PrefixMeetingRemark)
	if am.Has(syntax.PrefixRemark) {
		t.Error("r/ inside mr/ must not match")
	}
	if v, _ := am.Value(syntax.PrefixMeetingRemark); v != "Lunch" {
		t.Errorf("meeting remark = %q", v)
	}

	am = Tokenize(" a/Blk 5 n/x", syntax.PrefixAddress)
	if v, _ := am.Value(syntax.PrefixAddress); v != "Blk 5 n/x" {
		t.Errorf("address = %q", v)
	}
}

func TestTokenize_NoPrefixes(t *testing.T) {
	am := Tokenize("  hello world ", syntax.PrefixName)
	if am.Preamble() != "hello world" {
		t.Errorf("preamble = %q", am.Preamble())
	}
	am = Tokenize("  x ")
	if am.Preamble() != "x" {
		t.Errorf("preamble = %q", am.Preamble())
	}
}

func TestTokenize_EmptyValueAndLastWins(t *testing.T) {
	am := Tokenize(" n/ n/Bob", syntax.PrefixName)
	if got := am.AllValues(syntax.PrefixName); !slices.Equal(got, []string{"", "Bob"}) {
		t.Fatalf("values = %q", got)
	}
	if v, _ := am.Value(syntax.PrefixName); v != "Bob" {
		t.Errorf("last value = %q", v)
	}
}

func TestVerifyNoDuplicates(t *testing.T) {
	am := Tokenize(" s/a s/b e/c e/d mr/x", syntax.PrefixStart, syntax.PrefixEnd, syntax.PrefixMeetingRemark)
	err := am.VerifyNoDuplicates(syntax.PrefixStart, syntax.PrefixEnd, syntax.PrefixMeetingRemark)
	if !errors.Is(err, apperr.ErrDuplicatePrefix) {
		t.Fatalf("err = %v", err)
	}
	if want := MessageDuplicateFields + "s/ e/"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if err := am.VerifyNoDuplicates(syntax.PrefixMeetingRemark); err != nil {
		t.Errorf("single prefix flagged: %v", err)
	}
}

func TestVerifyNoBlankValue(t *testing.T) {
	am := Tokenize(" n/   ", syntax.PrefixName)
	err := am.VerifyNoBlankValue(syntax.PrefixName)
	if !errors.Is(err, apperr.ErrEmptyField) || err.Error() != "n/ field cannot be empty!" {
		t.Errorf("err = %v", err)
	}
}
