// Package i18n resolves display strings for status names and conflict
// messages. Catalogs are compiled in; the engine treats every returned
// string as opaque.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no supported language matches.
var DefaultLanguage = language.English

// Translator looks up message strings by key in the catalog of its
// active language, falling back to the default language and finally to
// the key itself. Safe for concurrent use; catalogs are immutable.
type Translator struct {
	lang language.Tag
}

var (
	supported = []language.Tag{language.English, language.Portuguese}
	matcher   = language.NewMatcher(supported)
)

// New returns a translator for the best supported match of the given
// language string (e.g. "en", "pt-PT", "pt-BR,en;q=0.8"). An empty or
// unknown value yields the default language.
func New(lang string) *Translator {
	if lang == "" {
		return &Translator{lang: DefaultLanguage}
	}

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return &Translator{lang: DefaultLanguage}
	}

	_, idx, _ := matcher.Match(tags...)

	return &Translator{lang: supported[idx]}
}

// Language reports the active language tag.
func (t *Translator) Language() language.Tag { return t.lang }

// T resolves a message key, applying fmt-style arguments when present.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := catalogs[t.lang][key]
	if !ok {
		msg, ok = catalogs[DefaultLanguage][key]
	}
	if !ok {
		return key
	}

	if len(args) == 0 {
		return msg
	}

	return fmt.Sprintf(msg, args...)
}
