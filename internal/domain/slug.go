package domain

import "strings"

// Slugify converts a display name to a URL-safe slug.
//
// Lowercase letters, digits, and hyphens are kept; uppercase letters are
// lowercased; runs of whitespace become a single hyphen; everything else is
// dropped. Leading, trailing, and doubled hyphens are collapsed so the
// result matches ^[a-z0-9]([a-z0-9-]*[a-z0-9])?$ or is empty.
//
// Pure and deterministic: Slugify(Slugify(x)) == Slugify(x). A name with no
// usable characters yields ""; the validation stage rejects those before
// any write happens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		var out rune
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = r
		case r >= 'A' && r <= 'Z':
			out = r + ('a' - 'A')
		case r == ' ' || r == '\t' || r == '\n' || r == '-' || r == '_':
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		default:
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(out)
	}
	return b.String()
}
