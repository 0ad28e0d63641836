package summarizer

import (
	"strings"
	"unicode"
)

const ellipsis = "..."

// TrimToLimit enforces a hard character ceiling on a summary. Strings within
// the limit are returned unchanged. Longer strings are cut at the limit, then
// backed up to the last space when that keeps the majority of the window
// (beyond 0.6 x limit), so words are not severed mid-token. Trailing periods
// and spaces are stripped before the ellipsis is appended; the ellipsis
// itself does not count against the limit.
func TrimToLimit(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	trimmed := []rune(strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace))

	lastSpace := -1
	for i := len(trimmed) - 1; i >= 0; i-- {
		if trimmed[i] == ' ' {
			lastSpace = i
			break
		}
	}
	if float64(lastSpace) > float64(limit)*0.6 {
		trimmed = trimmed[:lastSpace]
	}

	return strings.TrimRight(string(trimmed), ". ") + ellipsis
}
