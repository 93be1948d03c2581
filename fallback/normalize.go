package fallback

import (
	"strings"
	"unicode"
)

// FamilyKey converts a human-readable font-family name into the camelCase
// identifier that keys the capsize metrics table: "Roboto Slab" becomes
// "robotoSlab", "Inter" becomes "inter".
//
// A character counts as the start of a segment if it is the first word
// character of the input, an uppercase letter, or a word character following
// a non-word character. The first segment start is lower-cased, all later
// ones are upper-cased, and whitespace is removed. This is a single-pass
// scan; no regex engine involved.
func FamilyKey(family string) string {
	var sb strings.Builder
	sb.Grow(len(family))
	first := true
	prevIsWord := false
	for _, r := range family {
		switch {
		case isWordChar(r) && (isUpperChar(r) || !prevIsWord):
			if first {
				sb.WriteRune(unicode.ToLower(r))
				first = false
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
		case !unicode.IsSpace(r):
			sb.WriteRune(r)
		}
		prevIsWord = isWordChar(r)
	}
	return sb.String()
}

// Word characters in the sense of a regex \w: ASCII letters, digits and
// underscore. Family names in the capsize table are ASCII.
func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

func isUpperChar(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
