package form

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// humanizeLabel turns an identifier-style name into a display label:
// underscores and hyphens become spaces, internal capitals start a new
// word, each word is title-cased and runs of whitespace collapse.
func humanizeLabel(s string) string {
	if s == "" {
		return ""
	}

	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)

	var b strings.Builder
	b.Grow(len(s) + 4)
	prev := rune(0)
	for _, r := range s {
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	// cases.Caser is stateful, so build one per call rather than sharing.
	title := cases.Title(language.English)
	return strings.Join(strings.Fields(title.String(b.String())), " ")
}
