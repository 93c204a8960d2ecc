package password

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are visually confusable glyphs stripped when ExcludeSimilar
	// is set, regardless of which class contributed them.
	similarChars = "0O1lI|"
)

// Classes selects which character classes contribute to an alphabet.
type Classes struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// BuildCharset assembles the effective alphabet for the selected classes,
// always in the order uppercase, lowercase, numbers, symbols. Identical inputs
// produce identical output, so callers may memoize by flags. An empty result
// (no class selected) is a valid value; the generator treats it as a failed
// precondition.
func BuildCharset(classes Classes, excludeSimilar bool) string {
	var b strings.Builder

	if classes.Uppercase {
		b.WriteString(uppercaseChars)
	}
	if classes.Lowercase {
		b.WriteString(lowercaseChars)
	}
	if classes.Numbers {
		b.WriteString(numberChars)
	}
	if classes.Symbols {
		b.WriteString(symbolChars)
	}

	charset := b.String()
	if excludeSimilar {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(similarChars, r) {
				return -1
			}
			return r
		}, charset)
	}

	return charset
}
