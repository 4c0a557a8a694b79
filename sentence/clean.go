package sentence

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// asciiSymbols are the ASCII punctuation characters that unicode classifies
// as symbols (Sm, Sc, Sk).
const asciiSymbols = "$+<=>^`|~"

// IsPunct reports whether r is removed when cleaning a word.
func IsPunct(r rune) bool {
	return unicode.IsPunct(r) || strings.ContainsRune(asciiSymbols, r)
}

// Clean lowercases s and removes all punctuation characters.
// Clean(Clean(s)) == Clean(s)
func Clean(s string) string {
	lower := cases.Lower(language.Und).String(norm.NFC.String(s))
	stripped := strings.Map(func(r rune) rune {
		if IsPunct(r) {
			return -1
		}
		return r
	}, lower)

	// removing a mark may leave a composable sequence behind
	return norm.NFC.String(stripped)
}

// IsPunctOnly reports whether s is non empty and made only of punctuation.
func IsPunctOnly(s string) bool {
	return s != "" && Clean(s) == "" && strings.TrimSpace(s) != ""
}
