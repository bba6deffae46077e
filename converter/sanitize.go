package converter

import (
	"regexp"
	"strings"
)

var (
	allowedURLSchemes = map[string]bool{
		"http":   true,
		"https":  true,
		"ftp":    true,
		"mailto": true,
		"tel":    true,
	}
	urlSchemePattern     = regexp.MustCompile(`^[a-z0-9][-+.a-z0-9]*:`)
	urlIgnoredCharacters = regexp.MustCompile(`[\x60\x00-\x20\x7f-\x{a0}\s]+`)
	urlEntityReplacer    = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&", "\ufffd", "")
)

// CheckURL is the default URLSanitizer. Relative URLs and the http, https, ftp,
// mailto and tel schemes pass through unchanged; any other scheme is rejected.
// Characters browsers ignore inside a scheme (control characters, whitespace)
// are stripped before the scheme is inspected, so "jav\tascript:" is caught.
func CheckURL(raw string) (string, bool) {
	normalized := strings.ToLower(raw)
	normalized = urlEntityReplacer.Replace(normalized)
	normalized = urlIgnoredCharacters.ReplaceAllString(normalized, "")

	if scheme := urlSchemePattern.FindString(normalized); scheme != "" {
		if !allowedURLSchemes[strings.TrimSuffix(scheme, ":")] {
			return "", false
		}
	}
	return raw, true
}
