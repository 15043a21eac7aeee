// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

package wordreplace

import (
	"bytes"
	"html"
	"strings"
)

// ReplacePrettyHtml converts a replace set into a pretty HTML report.
// It is intended as an example from which to write one's own display functions.
func (wd *WordDiff) ReplacePrettyHtml(replaces []Replace) string {
	var buff bytes.Buffer
	for _, r := range replaces {
		if r.IsIdentity() {
			_, _ = buff.WriteString("<span>")
			_, _ = buff.WriteString(escapePrettyHtml(r.Original))
			_, _ = buff.WriteString("</span>")
			continue
		}
		if r.Original != "" {
			_, _ = buff.WriteString("<del style=\"background:#ffe6e6;\">")
			_, _ = buff.WriteString(escapePrettyHtml(r.Original))
			_, _ = buff.WriteString("</del>")
		}
		if r.Replacement != "" {
			_, _ = buff.WriteString("<ins style=\"background:#e6ffe6;\">")
			_, _ = buff.WriteString(escapePrettyHtml(r.Replacement))
			_, _ = buff.WriteString("</ins>")
		}
	}
	return buff.String()
}

func escapePrettyHtml(text string) string {
	return strings.Replace(html.EscapeString(text), "\n", "&para;<br>", -1)
}

// ReplacePrettyText converts a replace set into a colored text report, with
// removed text in red and inserted text in green.
func (wd *WordDiff) ReplacePrettyText(replaces []Replace) string {
	var buff bytes.Buffer
	for _, r := range replaces {
		if r.IsIdentity() {
			_, _ = buff.WriteString(r.Original)
			continue
		}
		if r.Original != "" {
			_, _ = buff.WriteString("\x1b[31m")
			_, _ = buff.WriteString(r.Original)
			_, _ = buff.WriteString("\x1b[0m")
		}
		if r.Replacement != "" {
			_, _ = buff.WriteString("\x1b[32m")
			_, _ = buff.WriteString(r.Replacement)
			_, _ = buff.WriteString("\x1b[0m")
		}
	}
	return buff.String()
}
