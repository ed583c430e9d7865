// Package textproc post-processes raw speech-to-text output: typo
// correction, duplicate collapsing, punctuation spacing, and sentence
// capitalization.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// step is one pass of the correction pipeline. Either a regex
// substitution or a function, never both.
type step struct {
	pattern *regexp.Regexp
	repl    string
	fn      func(string) string
}

// corrections is an ordered list, not a map: each pass runs on the
// output of the previous one, and later patterns rely on that.
var corrections = []step{
	// Recognition errors common in programming tutorials
	{pattern: regexp.MustCompile(`(?i)\bPITON\b`), repl: "Python"},
	{pattern: regexp.MustCompile(`(?i)\bPYTHEN\b`), repl: "Python"},
	{pattern: regexp.MustCompile(`(?i)\bPIE CHARM\b`), repl: "PyCharm"},
	{pattern: regexp.MustCompile(`(?i)\bGUGAL\b`), repl: "Google"},
	{pattern: regexp.MustCompile(`(?i)\bVERABLES\b`), repl: "variables"},
	{pattern: regexp.MustCompile(`(?i)\bCOTE EDITOR\b`), repl: "code editor"},
	{pattern: regexp.MustCompile(`(?i)\bSHONGYUHAIVIN\b`), repl: "showing you how to"},
	{pattern: regexp.MustCompile(`(?i)\bCA SENSITIVE\b`), repl: "case sensitive"},
	{pattern: regexp.MustCompile(`(?i)\bOPEN SAUCE\b`), repl: "open source"},
	// Strip filler phrases ending in a sentinel token. The two capture
	// groups match any two words, not specifically repeated ones; kept
	// as-is because changing it would change observable output.
	{pattern: regexp.MustCompile(`(?i)\b(\w+) (\w+) (?:OUT|EDIATELY)\b`), repl: "$1 $2"},
	// RE2 has no backreferences, so duplicate words are collapsed by a
	// scanner instead of \b(\w+)\s+\1\b
	{fn: CollapseDoubledWords},
	// Punctuation spacing
	{pattern: regexp.MustCompile(`\s+([.,!?])`), repl: "$1"},
	{pattern: regexp.MustCompile(`([.,!?])(\w)`), repl: "$1 $2"},
	{fn: CapitalizeSentences},
}

// Correct runs the full ordered correction pipeline over a raw
// transcript.
func Correct(text string) string {
	for _, s := range corrections {
		if s.fn != nil {
			text = s.fn(text)
			continue
		}
		text = s.pattern.ReplaceAllString(text, s.repl)
	}
	return text
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

// CollapseDoubledWords removes a word that immediately repeats its
// predecessor (case-insensitive), keeping the first occurrence.
// "the the code" becomes "the code"; punctuation between the two words
// prevents collapsing.
func CollapseDoubledWords(text string) string {
	locs := wordRe.FindAllStringIndex(text, -1)
	if len(locs) < 2 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	written := 0

	for i := 1; i < len(locs); i++ {
		prev, cur := locs[i-1], locs[i]
		between := text[prev[1]:cur[0]]
		if strings.TrimSpace(between) != "" {
			continue
		}
		if !strings.EqualFold(text[prev[0]:prev[1]], text[cur[0]:cur[1]]) {
			continue
		}
		// Drop the repeated word plus the whitespace before it
		b.WriteString(text[written:prev[1]])
		written = cur[1]
	}

	b.WriteString(text[written:])
	return b.String()
}

// CapitalizeSentences upper-cases the first letter of the text and of
// every sentence that follows a terminator. RE2 has no lookbehind, so
// this is a rune scan rather than a split on (?<=[.!?])\s+.
func CapitalizeSentences(text string) string {
	runes := []rune(text)
	atStart := true

	for i, r := range runes {
		switch {
		case atStart && unicode.IsLetter(r):
			runes[i] = unicode.ToUpper(r)
			atStart = false
		case r == '.' || r == '!' || r == '?':
			atStart = true
		case atStart && !unicode.IsSpace(r):
			atStart = false
		}
	}

	return string(runes)
}
