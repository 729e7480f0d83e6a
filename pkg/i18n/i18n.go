// Package i18n holds the localized message catalogs used across the brief
// flow and resolves the language for incoming requests.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to force a language.
const LangParam = "lang"

// Localizer is the minimal message-printer contract consumers depend on.
// *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var _ Localizer = (*message.Printer)(nil)

var supportedTags = []language.Tag{
	language.Swedish,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags, default first.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.Swedish
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// DefaultPrinter returns a printer for the default language.
func DefaultPrinter() *message.Printer {
	return Printer(Default())
}

// Match maps an arbitrary tag or language string onto a supported tag.
func Match(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	matched, _, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return base(matched)
}

// ResolveTag determines the best language tag for the request. The lang
// query parameter wins over Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		return Match(v)
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			matched, _, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return base(matched)
			}
		}
	}
	return Default()
}

// base strips the -u-rg extensions the matcher may attach so the tag hits
// the catalog entries registered for the plain language.
func base(tag language.Tag) language.Tag {
	for _, supported := range supportedTags {
		b, _ := tag.Base()
		sb, _ := supported.Base()
		if b == sb {
			return supported
		}
	}
	return Default()
}
