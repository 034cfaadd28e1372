// Package locale provides the localized strings the store needs when it
// creates a fresh database.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// supported and generalNote are parallel; the first entry is the fallback
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Portuguese,
	language.Russian,
	language.Czech,
	language.Slovak,
}

var generalNote = []string{
	"General note",
	"Allgemeine Notiz",
	"Note générale",
	"Nota general",
	"Nota generale",
	"Algemene notitie",
	"Nota geral",
	"Общая заметка",
	"Obecná poznámka",
	"Všeobecná poznámka",
}

var matcher = language.NewMatcher(supported)

// DefaultNoteTitle returns the title of the note seeded into a new database.
// lang is a BCP 47 tag, an Accept-Language style list or a POSIX locale such
// as de_DE.UTF-8; unknown or empty values fall back to English.
func DefaultNoteTitle(lang string) string {
	tags, _, err := language.ParseAcceptLanguage(normalize(lang))
	if err != nil || len(tags) == 0 {
		return generalNote[0]
	}

	_, index, _ := matcher.Match(tags...)
	return generalNote[index]
}

// normalize turns a POSIX locale (de_DE.UTF-8, sr_RS@latin) into a BCP 47 tag
func normalize(lang string) string {
	if strings.ContainsAny(lang, ",;") {
		return lang
	}
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
