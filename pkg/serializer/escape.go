package serializer

import "strings"

const (
	escapeChar  = '\\'
	fieldSep    = '\t'
	hobbySep    = '|'
	hobbySepStr = "|"
	fieldSepStr = "\t"
)

// EscapeField protects the separators inside a free-text value
// Backslash, tab, newline and pipe are escaped; everything else passes through.
func EscapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '|':
			b.WriteString(`\|`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UnescapeField reverses EscapeField
// An unknown escape or a trailing backslash is kept literally; it never fails.
func UnescapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != escapeChar || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case '|':
			b.WriteByte('|')
			i++
		default:
			// next char is handled on its own in the following iteration
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SplitUnescapedPipes splits a hobby block on bare pipes
// Escape pairs such as `\|` are copied through intact for UnescapeField to decode later.
// The result always holds at least one token.
func SplitUnescapedPipes(s string) []string {
	parts := make([]string, 0, strings.Count(s, hobbySepStr)+1)
	var current strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == escapeChar && i+1 < len(s) {
			current.WriteByte(c)
			current.WriteByte(s[i+1])
			i++
			continue
		}

		if c == hobbySep {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(c)
	}

	return append(parts, current.String())
}

// joinHobbies escapes each hobby and joins them with bare pipes
func joinHobbies(hobbies []string) string {
	escaped := make([]string, len(hobbies))
	for i, h := range hobbies {
		escaped[i] = EscapeField(h)
	}
	return strings.Join(escaped, hobbySepStr)
}
