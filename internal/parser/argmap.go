package parser

import (
	"strings"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/syntax"
)

// Messages for argument-level failures.
const (
	MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "
	MessageEmptyField      = "%s field cannot be empty!"
)

// ArgumentMap holds the output of Tokenize for a single command line.
type ArgumentMap struct {
	preamble string
	values   map[syntax.Prefix][]string
}

func newArgumentMap() *ArgumentMap {
	return &ArgumentMap{values: make(map[syntax.Prefix][]string)}
}

func (am *ArgumentMap) put(p syntax.Prefix, v string) {
	am.values[p] = append(am.values[p], v)
}

// Value returns the last value given for p.
func (am *ArgumentMap) Value(p syntax.Prefix) (string, bool) {
	vs := am.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in input order.
func (am *ArgumentMap) AllValues(p syntax.Prefix) []string {
	return append([]string(nil), am.values[p]...)
}

// Has reports whether p occurred at least once.
func (am *ArgumentMap) Has(p syntax.Prefix) bool { return len(am.values[p]) > 0 }

// Preamble returns the text before the first prefix.
func (am *ArgumentMap) Preamble() string { return am.preamble }

// VerifyNoDuplicates fails if any of prefixes occurred more than once.
func (am *ArgumentMap) VerifyNoDuplicates(prefixes ...syntax.Prefix) error {
	var dups []string
	seen := make(map[syntax.Prefix]bool, len(prefixes))
	for _, p := range prefixes {
		if seen[p] {
			continue
		}
		seen[p] = true
		if len(am.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return apperr.New(apperr.ErrDuplicatePrefix, "%s%s", MessageDuplicateFields, strings.Join(dups, " "))
}

// VerifyNoBlankValue fails if p occurred with a blank value.
func (am *ArgumentMap) VerifyNoBlankValue(p syntax.Prefix) error {
	for _, v := range am.values[p] {
		if strings.TrimSpace(v) == "" {
			return apperr.New(apperr.ErrEmptyField, MessageEmptyField, p)
		}
	}
	return nil
}
