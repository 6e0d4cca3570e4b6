// Package normalize canonicalizes raw menu item names into stable comparison
// keys. Raw names embed presentation noise (spice level, portion size, count
// qualifiers, daypart prefixes) that must not leak into filter labels or price
// lookups.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// Size/spice qualifiers wrapped in parentheses, e.g. "咔啦脆雞(辣)".
	// Both ASCII and full-width parens appear in the dataset.
	reQualifier = regexp.MustCompile(`[(（](?:大|中|小|辣|不辣)[)）]`)

	// A count-with-unit run at the start of the name, e.g. "2塊咔啦脆雞".
	// Trailing runs like "咔啦脆雞2塊" name a distinct SKU and must survive.
	reLeadingCount = regexp.MustCompile(`^[1-9][0-9]*(?:塊|份|顆|入)`)
)

var timeWindowPrefixes = []string{
	"20:00前供應",
	"20:00後供應",
}

// step is one pass of the normalization pipeline. The order of the pipeline
// is load-bearing: qualifier stripping may expose a leading count, and the
// final unwrap only sees the fully stripped name.
type step struct {
	name  string
	apply func(string) string
}

var pipeline = []step{
	{"strip-qualifiers", stripQualifiers},
	{"strip-leading-count", stripLeadingCount},
	{"strip-time-window", stripTimeWindow},
	{"unwrap", unwrap},
}

// Name canonicalizes a raw item name. The pipeline runs to a fixpoint so the
// result is idempotent: Name(Name(x)) == Name(x) even when one pass exposes
// noise for an earlier step (an unwrap revealing a leading count, say).
func Name(raw string) string {
	for {
		next := raw
		for _, s := range pipeline {
			next = s.apply(next)
		}
		if next == raw {
			return raw
		}
		raw = next
	}
}

func stripQualifiers(s string) string {
	return reQualifier.ReplaceAllString(s, "")
}

func stripLeadingCount(s string) string {
	for {
		next := reLeadingCount.ReplaceAllString(s, "")
		if next == s {
			return s
		}
		s = next
	}
}

func stripTimeWindow(s string) string {
	for _, prefix := range timeWindowPrefixes {
		s = strings.TrimPrefix(s, prefix)
	}
	return s
}

func unwrap(s string) string {
	s = strings.TrimSpace(s)
	for _, pair := range [][2]string{{"(", ")"}, {"（", "）"}} {
		if strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			inner := strings.TrimSuffix(strings.TrimPrefix(s, pair[0]), pair[1])
			if !strings.Contains(inner, pair[0]) && !strings.Contains(inner, pair[1]) {
				return strings.TrimSpace(inner)
			}
		}
	}
	return s
}
