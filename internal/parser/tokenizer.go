// Package parser turns command lines into executable commands.
package parser

import (
	"regexp"
	"slices"
	"strings"

	"github.com/starford/findvisor/internal/syntax"
)

// Tokenize splits args into a preamble and the values following each of the
// given prefixes. A prefix only counts when it starts the string or follows
// whitespace. Tokenize never rejects input.
func Tokenize(args string, prefixes ...syntax.Prefix) *ArgumentMap {
	am := newArgumentMap()
	if len(prefixes) == 0 {
		am.preamble = strings.TrimSpace(args)
		return am
	}

	re := prefixPattern(prefixes)
	matches := re.FindAllStringSubmatchIndex(args, -1)
	if len(matches) == 0 {
		am.preamble = strings.TrimSpace(args)
		return am
	}

	// m[2]:m[3] is the prefix itself, without the leading whitespace.
	am.preamble = strings.TrimSpace(args[:matches[0][2]])
	for i, m := range matches {
		end := len(args)
		if i+1 < len(matches) {
			end = matches[i+1][2]
		}
		prefix := syntax.Prefix(args[m[2]:m[3]])
		am.put(prefix, strings.TrimSpace(args[m[3]:end]))
	}
	return am
}

func prefixPattern(prefixes []syntax.Prefix) *regexp.Regexp {
	alts := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		alts = append(alts, regexp.QuoteMeta(string(p)))
	}
	// Longest first so that a short prefix never shadows a longer one.
	slices.SortFunc(alts, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	alts = slices.Compact(alts)
	return regexp.MustCompile(`(?:^|\s)(` + strings.Join(alts, "|") + `)`)
}
