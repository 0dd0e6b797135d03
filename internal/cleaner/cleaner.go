package cleaner

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner strips markup from provider-supplied text using Bluemonday.
// Posting titles come from an external API and must be stored as plain text.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a cleaner that strips ALL HTML
func NewCleaner() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// CleanText removes markup, decodes HTML entities and trims whitespace
func (c *Cleaner) CleanText(s string) string {
	text := c.policy.Sanitize(s)
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}
