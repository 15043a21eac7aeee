// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

// Package wordreplace converts the character-granular edit script produced
// by a diff engine into a minimal sequence of replace operations whose
// boundaries fall on whole words rather than arbitrary character runs.
//
// Character-level diff algorithms freely split edits mid-word (turning
// "world" -> "earth" into "wo" -> "ea" plus "rld" -> "rth" depending on
// shared substrings), which is unusable for highlighting, auto-correction
// acceptance or any transform that should operate on semantic units. This
// package re-segments and merges the raw edit script so that boundaries fall
// on configurable separator strings wherever possible, while preserving an
// exact, lossless mapping back to both texts.
package wordreplace

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ConfigurationError reports an unusable separator configuration, e.g. a
// separator set that is empty after normalization. It is returned before any
// diff computation happens.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "wordreplace: invalid separator configuration: " + e.Reason
}

// WordDiff holds the configuration for word-level replace computation.
// The zero value behaves like [New] except that the engine runs without a
// time limit. WordDiff is safe for concurrent use; Diff reads the fields but
// never writes them.
type WordDiff struct {
	// Separator strings marking word boundaries. Empty strings are dropped
	// and longer separators take precedence over shorter ones that share a
	// prefix (so a two-character line terminator is never split in half).
	// A nil slice means the default single ASCII space.
	Separators []string

	// How long the underlying diff engine may search for a minimal edit
	// script before cutting off (0 for no limit).
	DiffTimeout time.Duration
}

// New creates a WordDiff with default parameters.
func New() *WordDiff {
	return &WordDiff{
		Separators:  []string{DefaultSeparator},
		DiffTimeout: time.Second,
	}
}

// Diff computes the word-aligned replace set that transforms original into
// fixed.
//
// The result is ordered and contiguous: each replace's To equals the next
// one's From, concatenating Original over the result yields original and
// concatenating Replacement yields fixed. Unchanged regions, including whole
// words untouched by the edit, appear as identity replaces.
func (wd *WordDiff) Diff(original, fixed string) ([]Replace, error) {
	separators := wd.Separators
	if separators == nil {
		separators = []string{DefaultSeparator}
	}
	matchers, err := NewSeparatorMatchers(separators)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = wd.DiffTimeout
	diffs := dmp.DiffMain(original, fixed, false)

	replaces := ConvertDiffToReplaceSet(diffs)

	// A merge at one boundary can expose a new mergeable pair that the fold
	// has already moved past; a second pass picks those up. Exactly two
	// passes, not a loop to a fixed point.
	for pass := 0; pass < 2; pass++ {
		replaces, err = reduceReplaceSet(replaces, matchers)
		if err != nil {
			return nil, err
		}
	}

	return mergeInsertions(replaces), nil
}
