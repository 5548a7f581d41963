// Package sanitize strips markup from client-supplied strings before
// they reach the store.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Strip removes all HTML tags from s.
func Strip(s string) string {
	return policy.Sanitize(s)
}

// Clean strips markup and trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
