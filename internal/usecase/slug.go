package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugMaxLength = 100

// germanReplacer expands umlauts and sharp s before generic transliteration,
// matching how the slugs are expected to read in German URLs.
var germanReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
)

// Slugify derives a URL-safe slug from an article title: lowercase, German
// transliteration, diacritics stripped, non-alphanumeric runs collapsed to a
// single dash, trimmed and capped at slugMaxLength.
func Slugify(title string) string {
	s := germanReplacer.Replace(strings.ToLower(title))

	// Decompose and drop combining marks (é -> e, ç -> c).
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripper, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > slugMaxLength {
		slug = strings.Trim(slug[:slugMaxLength], "-")
	}
	return slug
}
