package textproc

import (
	"strings"
	"unicode"
)

// Sentences splits text on sentence terminators followed by whitespace,
// keeping the terminator with its sentence.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)

	for i, r := range runes {
		b.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}

	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}

	return out
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CleanSummary tidies model output: collapses doubled words and
// upper-cases the first letter.
func CleanSummary(summary string) string {
	summary = CollapseDoubledWords(summary)
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return summary
	}
	runes := []rune(summary)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
