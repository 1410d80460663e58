// Package textutil holds the low-level string operations the extraction
// engine is built on: anchor-based block slicing, line cleanup, and the
// normalization applied to raw text-layer output before any template runs.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// BlockBetween returns the trimmed substring between the first occurrence of
// start and the first occurrence of end after it. Missing anchors yield "";
// the function never fails. Anchor slicing is the only structure available
// without a full layout model.
func BlockBetween(text, start, end string) string {
	i := strings.Index(text, start)
	if i < 0 {
		return ""
	}
	from := i + len(start)
	j := strings.Index(text[from:], end)
	if j < 0 {
		return ""
	}
	return strings.TrimSpace(text[from : from+j])
}

// NonEmptyLines splits a block into trimmed lines, dropping empty ones and
// preserving order.
func NonEmptyLines(block string) []string {
	raw := strings.Split(block, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// FirstSubmatch returns the first capture group of the first match, or the
// whole match when the pattern has no groups, or "" when there is no match.
func FirstSubmatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[0])
}

var (
	reSpaceRuns  = regexp.MustCompile(`[ \t]+`)
	reBlankLines = regexp.MustCompile(`\n{2,}`)
)

// NormalizeText cleans raw PDF text-layer output: runs of 3+ identical
// characters collapse to one (layout reconstruction smears "LLLL" etc.),
// horizontal whitespace collapses to a single space, blank lines collapse,
// and non-printable characters are dropped.
func NormalizeText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = collapseRepeats(s)
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = reBlankLines.ReplaceAllString(s, "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	lines := strings.Split(b.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// collapseRepeats shrinks any run of 3 or more identical runes to a single
// rune. RE2 has no backreferences, so this is done by hand.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			// flush a double: runs of exactly 2 stay as written
			if run == 2 {
				b.WriteRune(prev)
			}
			prev = r
			run = 1
		}
		if run == 1 {
			b.WriteRune(r)
		}
	}
	if run == 2 {
		b.WriteRune(prev)
	}
	return b.String()
}
