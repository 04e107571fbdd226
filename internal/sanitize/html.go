package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var (
	// strictPolicy removes all HTML tags and attributes. Used for fields
	// that must be plain text (event names, usernames).
	strictPolicy = bluemonday.StrictPolicy()

	// ugcPolicy allows safe user-generated content with basic formatting.
	// Used for event descriptions. Removes <script>, <iframe>, event
	// handlers, and style attributes.
	ugcPolicy = bluemonday.UGCPolicy()
)

// Text strips all HTML and returns plain text.
func Text(input string) string {
	return strictPolicy.Sanitize(input)
}

// HTML sanitizes HTML content, keeping safe formatting tags.
func HTML(input string) string {
	return ugcPolicy.Sanitize(input)
}
