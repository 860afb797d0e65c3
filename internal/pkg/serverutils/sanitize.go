package serverutils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeString strips all HTML from free-text input and trims whitespace.
func SanitizeString(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
