package notify

import "strings"

var headerReplacer = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")

// SanitizeHeader makes a value safe for an email header: carriage returns,
// line feeds and tabs become spaces and the result is trimmed.
func SanitizeHeader(value string) string {
	return strings.TrimSpace(headerReplacer.Replace(value))
}

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the five HTML-special characters with entities.
func EscapeHTML(value string) string {
	return htmlReplacer.Replace(value)
}
