// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

package wordreplace

import (
	"sort"
	"strings"
)

// DefaultSeparator is the word boundary used when no separator set is
// configured.
const DefaultSeparator = " "

// WhitespaceSeparators is a curated list of whitespace and line-terminator
// separator strings covering the common Unicode space, tab and line-break
// characters, for callers who want broader boundary detection than the
// default ASCII space.
var WhitespaceSeparators = []string{
	"\r\n", " ", "\t", "\n", "\v", "\f", "\r",
	"\u0085", "\u00a0", "\u1680",
	"\u2000", "\u2001", "\u2002", "\u2003", "\u2004",
	"\u2005", "\u2006", "\u2007", "\u2008", "\u2009", "\u200a",
	"\u2028", "\u2029", "\u202f", "\u205f", "\u3000",
}

// SeparatorMatchers bundles the boundary predicates and searches used by
// [MergeReplacePair], specialized to one normalized separator set. The zero
// value is not usable; construct with [NewSeparatorMatchers].
type SeparatorMatchers struct {
	separators []string // non-empty, deduplicated, longest first
}

// defaultMatchers replicates plain single-space behavior for callers that
// pass nil matchers.
var defaultMatchers = &SeparatorMatchers{separators: []string{DefaultSeparator}}

// NewSeparatorMatchers normalizes separators and returns matchers over the
// result. Normalization drops empty strings, removes duplicates and stably
// sorts the remainder by descending length, so a longer separator always
// wins over a shorter one that is its prefix (e.g. "\r\n" over "\r").
// Returns a *ConfigurationError when nothing remains after normalization.
func NewSeparatorMatchers(separators []string) (*SeparatorMatchers, error) {
	normalized := normalizeSeparators(separators)
	if len(normalized) == 0 {
		return nil, &ConfigurationError{Reason: "no non-empty separators"}
	}
	return &SeparatorMatchers{separators: normalized}, nil
}

func normalizeSeparators(separators []string) []string {
	seen := make(map[string]struct{}, len(separators))
	normalized := make([]string, 0, len(separators))
	for _, sep := range separators {
		if sep == "" {
			continue
		}
		if _, dup := seen[sep]; dup {
			continue
		}
		seen[sep] = struct{}{}
		normalized = append(normalized, sep)
	}
	// Stable so that equal-length separators keep their supplied order.
	sort.SliceStable(normalized, func(i, j int) bool {
		return len(normalized[i]) > len(normalized[j])
	})
	return normalized
}

// StartsWithSeparator reports whether text begins with any configured
// separator.
func (m *SeparatorMatchers) StartsWithSeparator(text string) bool {
	for _, sep := range m.separators {
		if strings.HasPrefix(text, sep) {
			return true
		}
	}
	return false
}

// EndsWithSeparator reports whether text ends with any configured separator.
func (m *SeparatorMatchers) EndsWithSeparator(text string) bool {
	for _, sep := range m.separators {
		if strings.HasSuffix(text, sep) {
			return true
		}
	}
	return false
}

// FindLastSeparator returns the rightmost separator occurrence in text and
// its byte index, or ("", -1) when text contains no separator. When two
// separators match at the same index the longest one wins.
func (m *SeparatorMatchers) FindLastSeparator(text string) (string, int) {
	if len(m.separators) == 1 {
		// Fast path for the common single-separator configuration.
		if idx := strings.LastIndex(text, m.separators[0]); idx >= 0 {
			return m.separators[0], idx
		}
		return "", -1
	}

	bestSep, bestIdx := "", -1
	for _, sep := range m.separators {
		if idx := strings.LastIndex(text, sep); idx > bestIdx {
			bestSep, bestIdx = sep, idx
		}
	}
	return bestSep, bestIdx
}

// FindFirstSeparator returns the leftmost separator occurrence in text and
// its byte index, or ("", -1) when text contains no separator. When two
// separators match at the same index the longest one wins.
func (m *SeparatorMatchers) FindFirstSeparator(text string) (string, int) {
	if len(m.separators) == 1 {
		if idx := strings.Index(text, m.separators[0]); idx >= 0 {
			return m.separators[0], idx
		}
		return "", -1
	}

	bestSep, bestIdx := "", -1
	for _, sep := range m.separators {
		idx := strings.Index(text, sep)
		if idx == -1 {
			continue
		}
		if bestIdx == -1 || idx < bestIdx {
			bestSep, bestIdx = sep, idx
		}
	}
	return bestSep, bestIdx
}
