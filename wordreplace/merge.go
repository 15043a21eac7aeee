// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

package wordreplace

import "fmt"

// AdjacencyError reports a replace pair whose spans are not contiguous. It
// indicates a broken invariant in upstream construction, never a user-facing
// condition.
type AdjacencyError struct {
	LeftTo    int
	RightFrom int
}

func (e *AdjacencyError) Error() string {
	return fmt.Sprintf("wordreplace: replace pair is not adjacent: left ends at %d, right starts at %d", e.LeftTo, e.RightFrom)
}

// MergeReplacePair combines two position-adjacent replaces into one or two
// replaces whose boundary falls on a separator wherever possible. A nil
// matchers falls back to plain single-space behavior.
//
// Two identities, or two real edits, always combine into one replace. When
// exactly one side is an identity, the boundary is re-anchored to the
// nearest separator inside the identity text so that only the minimal word
// fragment is absorbed by the edit: the last separator when the identity is
// on the left, the first when it is on the right. An identity without any
// separator is swallowed whole. An insertion or deletion that itself begins
// (or ends) exactly at a separator boundary is already well-formed and is
// left alone.
//
// Returns an *AdjacencyError when left.To != right.From.
func MergeReplacePair(left, right Replace, matchers *SeparatorMatchers) ([]Replace, error) {
	if left.To != right.From {
		return nil, &AdjacencyError{LeftTo: left.To, RightFrom: right.From}
	}
	if matchers == nil {
		matchers = defaultMatchers
	}

	switch {
	case left.IsIdentity() == right.IsIdentity():
		// Two identities, or two real edits: no boundary to preserve.
		return []Replace{concatReplacePair(left, right)}, nil
	case left.IsIdentity():
		return mergeIdentityLeft(left, right, matchers), nil
	default:
		return mergeIdentityRight(left, right, matchers), nil
	}
}

// concatReplacePair combines two adjacent replaces field by field.
func concatReplacePair(left, right Replace) Replace {
	return Replace{
		From:        left.From,
		To:          right.To,
		Original:    left.Original + right.Original,
		Replacement: left.Replacement + right.Replacement,
	}
}

// mergeIdentityLeft handles an identity followed by a real edit. The
// identity text is split after its last separator: the head stays a
// standalone identity and the trailing word fragment is prepended to the
// edit.
func mergeIdentityLeft(left, right Replace, m *SeparatorMatchers) []Replace {
	if (right.Original == "" && m.StartsWithSeparator(right.Replacement)) ||
		(right.Replacement == "" && m.StartsWithSeparator(right.Original)) {
		return []Replace{left, right}
	}

	sep, idx := m.FindLastSeparator(left.Replacement)
	if idx < 0 {
		// No word boundary to split on; the edit swallows the identity.
		return []Replace{concatReplacePair(left, right)}
	}

	cut := idx + len(sep)
	head, tail := left.Original[:cut], left.Original[cut:]
	merged := Replace{
		From:        left.From + cut,
		To:          right.To,
		Original:    tail + right.Original,
		Replacement: tail + right.Replacement,
	}
	if head == "" {
		return []Replace{merged}
	}
	return []Replace{
		{From: left.From, To: left.From + cut, Original: head, Replacement: head},
		merged,
	}
}

// mergeIdentityRight is the mirror of mergeIdentityLeft: a real edit
// followed by an identity, split before the identity's first separator so
// the leading word fragment is appended to the edit.
func mergeIdentityRight(left, right Replace, m *SeparatorMatchers) []Replace {
	if (left.Original == "" && m.EndsWithSeparator(left.Replacement)) ||
		(left.Replacement == "" && m.EndsWithSeparator(left.Original)) {
		return []Replace{left, right}
	}

	sep, idx := m.FindFirstSeparator(right.Original)
	if idx < 0 {
		return []Replace{concatReplacePair(left, right)}
	}

	tail := right.Original[idx:]
	if tail == sep {
		// Splitting here would leave a standalone separator-only fragment.
		return []Replace{concatReplacePair(left, right)}
	}

	head := right.Original[:idx]
	merged := Replace{
		From:        left.From,
		To:          left.To + idx,
		Original:    left.Original + head,
		Replacement: left.Replacement + head,
	}
	return []Replace{
		merged,
		{From: merged.To, To: right.To, Original: tail, Replacement: tail},
	}
}

// reduceReplaceSet folds MergeReplacePair left to right across the whole
// sequence: each incoming replace is merged with the last accumulated one,
// and the one or two results take its place.
func reduceReplaceSet(replaces []Replace, m *SeparatorMatchers) ([]Replace, error) {
	reduced := make([]Replace, 0, len(replaces))
	for _, r := range replaces {
		if len(reduced) == 0 {
			reduced = append(reduced, r)
			continue
		}
		merged, err := MergeReplacePair(reduced[len(reduced)-1], r, m)
		if err != nil {
			return nil, err
		}
		reduced = append(reduced[:len(reduced)-1], merged...)
	}
	return reduced, nil
}

// mergeInsertions repairs one residual artifact of the reduction: a pure
// insertion sitting next to a fragment that starts or ends with a space on
// both sides, which would otherwise render as a doubled space at the
// insertion boundary. The space is shifted across the boundary, offsets
// adjusted by one. This pass always uses the plain ASCII space, not the
// configured separator set.
func mergeInsertions(replaces []Replace) []Replace {
	merged := make([]Replace, 0, len(replaces))
	for _, r := range replaces {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := merged[len(merged)-1]

		switch {
		case last.Original == "" && hasSpacePrefix(r.Original) && hasSpacePrefix(r.Replacement):
			// Shift one leading space from r to the end of the insertion.
			merged[len(merged)-1] = Replace{
				From:        last.From,
				To:          last.To + 1,
				Original:    DefaultSeparator,
				Replacement: last.Replacement + DefaultSeparator,
			}
			merged = append(merged, Replace{
				From:        r.From + 1,
				To:          r.To,
				Original:    r.Original[1:],
				Replacement: r.Replacement[1:],
			})
		case r.Original == "" && hasSpaceSuffix(last.Original) && hasSpaceSuffix(last.Replacement):
			// Shift one trailing space from last to the front of the insertion.
			merged[len(merged)-1] = Replace{
				From:        last.From,
				To:          last.To - 1,
				Original:    last.Original[:len(last.Original)-1],
				Replacement: last.Replacement[:len(last.Replacement)-1],
			}
			merged = append(merged, Replace{
				From:        r.From - 1,
				To:          r.To,
				Original:    DefaultSeparator,
				Replacement: DefaultSeparator + r.Replacement,
			})
		default:
			merged = append(merged, r)
		}
	}
	return merged
}

func hasSpacePrefix(text string) bool {
	return len(text) > 0 && text[0] == ' '
}

func hasSpaceSuffix(text string) bool {
	return len(text) > 0 && text[len(text)-1] == ' '
}
