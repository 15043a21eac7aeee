// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

package wordreplace

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Replace maps one span of the original text to its replacement in the fixed
// text. From and To are byte offsets into the original text, so To-From
// equals len(Original) but need not equal len(Replacement); a pure insertion
// has From == To and an empty Original, a pure deletion has an empty
// Replacement.
//
// Within an ordered replace set, concatenating Original across the elements
// rebuilds the original text exactly and concatenating Replacement rebuilds
// the fixed text.
type Replace struct {
	From        int
	To          int
	Original    string
	Replacement string
}

// IsIdentity reports whether r leaves its span unchanged.
func (r Replace) IsIdentity() bool {
	return r.Original == r.Replacement
}

func (r Replace) String() string {
	return fmt.Sprintf("Replace(%d-%d, %q -> %q)", r.From, r.To, r.Original, r.Replacement)
}

// ConvertDiffToReplaceSet turns a raw edit script into one Replace per
// operation, tracking absolute positions in the original text. The position
// cursor advances on equalities and deletions only; insertions are
// zero-width. No merging happens here.
func ConvertDiffToReplaceSet(diffs []diffmatchpatch.Diff) []Replace {
	replaces := make([]Replace, 0, len(diffs))
	position := 0

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			replaces = append(replaces, Replace{
				From:        position,
				To:          position + len(d.Text),
				Original:    d.Text,
				Replacement: d.Text,
			})
			position += len(d.Text)
		case diffmatchpatch.DiffDelete:
			replaces = append(replaces, Replace{
				From:     position,
				To:       position + len(d.Text),
				Original: d.Text,
			})
			position += len(d.Text)
		case diffmatchpatch.DiffInsert:
			replaces = append(replaces, Replace{
				From:        position,
				To:          position,
				Replacement: d.Text,
			})
		}
	}

	return replaces
}

// ReplaceText1 rebuilds the original text from a replace set.
func (wd *WordDiff) ReplaceText1(replaces []Replace) string {
	var b strings.Builder
	for _, r := range replaces {
		b.WriteString(r.Original)
	}
	return b.String()
}

// ReplaceText2 rebuilds the fixed text from a replace set.
func (wd *WordDiff) ReplaceText2(replaces []Replace) string {
	var b strings.Builder
	for _, r := range replaces {
		b.WriteString(r.Replacement)
	}
	return b.String()
}

// ReplaceXIndex maps loc, a byte offset into the original text, to the
// corresponding offset in the fixed text. Offsets inside a changed span map
// to the start of that span's replacement; offsets past the end map to the
// end of the fixed text.
func (wd *WordDiff) ReplaceXIndex(replaces []Replace, loc int) int {
	pos := 0
	for _, r := range replaces {
		if loc < r.To {
			if r.IsIdentity() {
				return pos + (loc - r.From)
			}
			return pos
		}
		pos += len(r.Replacement)
	}
	return pos
}
