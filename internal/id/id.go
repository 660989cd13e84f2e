package id

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Subscription returns a deterministic subscription ID like "sub_netflix"
// derived from the vendor display name. The same vendor always yields the
// same ID, so ranking overrides survive across detection runs.
func Subscription(displayName string) string {
	slug := strings.ToLower(displayName)
	slug = nonAlnumRe.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "unknown"
	}
	return "sub_" + slug
}
