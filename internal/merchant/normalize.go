package merchant

import (
	"regexp"
	"strings"
)

// maxKeyLen bounds cache keys so minor trailing variation (transaction IDs,
// store numbers) maps to the same key.
const maxKeyLen = 60

var nonAlnumRe = regexp.MustCompile(`[^A-Z0-9]+`)

// CacheKey normalizes a raw description into a stable cache key: uppercase,
// runs of non-alphanumerics collapsed to single spaces, trimmed, truncated.
func CacheKey(description string) string {
	key := strings.ToUpper(description)
	key = nonAlnumRe.ReplaceAllString(key, " ")
	key = strings.TrimSpace(key)
	if len(key) > maxKeyLen {
		key = strings.TrimSpace(key[:maxKeyLen])
	}
	return key
}

// junkTokenRe matches trailing reference tokens: anything with a digit in it,
// optionally prefixed by #/* markers. "NETFLIX.COM 866-579-7172" -> the phone
// number tokens are junk, "NETFLIX.COM" is not.
var junkTokenRe = regexp.MustCompile(`^[#*]?[A-Z]*\d[\dA-Z/#*.-]*$`)

// StripTrailingJunk removes trailing numeric IDs, dates, and reference codes
// from a description, leaving the leading merchant text.
func StripTrailingJunk(description string) string {
	words := strings.Fields(strings.ToUpper(description))
	for len(words) > 1 && junkTokenRe.MatchString(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// TitleCase renders an uppercase description fragment as a display name:
// "ACME WIDGETS" -> "Acme Widgets".
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		for j, c := range r {
			if c >= 'a' && c <= 'z' {
				if j == 0 || !isLetter(r[j-1]) {
					r[j] = c - 'a' + 'A'
				}
				break
			}
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func isLetter(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
