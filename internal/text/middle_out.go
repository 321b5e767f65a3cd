package text

import "unicode/utf8"

// MiddleOut shortens text to at most 2*keep runes, replacing the middle part
// with the given separator.
func MiddleOut(text string, keep int, separator string) string {
	if utf8.RuneCountInString(text) <= keep*2 {
		return text
	}

	runes := []rune(text)

	return string(runes[:keep]) + separator + string(runes[len(runes)-keep:])
}
