// Package catalog holds the canned response phrases, keyed by conversational
// category and language.
//
// The catalog is loaded once at startup from an optional TOML file and is
// immutable afterwards. When the file is absent or invalid the built-in
// defaults are used; the response file is a soft dependency.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/BurntSushi/toml"

	"github.com/polyglotbot/polyglot/internal/language"
	xlate "github.com/polyglotbot/polyglot/internal/translate"
)

// Category is a fixed conversational intent bucket.
type Category string

const (
	Greeting Category = "greeting"
	Farewell Category = "farewell"
	Name     Category = "name"
	Help     Category = "help"
	Fallback Category = "fallback"
)

// noResponse is returned when a category has neither the requested language
// nor an English entry.
const noResponse = "I'm not sure what to say."

// TranslateFunc converts text between languages, returning the input or a
// sentinel on failure, never an error. The dispatcher's Translate method
// satisfies it.
type TranslateFunc func(ctx context.Context, text string, source, target language.Code) string

// Catalog is an immutable two-level phrase table.
type Catalog struct {
	entries map[Category]map[language.Code][]string
	logger  *slog.Logger
}

// Load reads a response file in TOML form:
//
//	[greeting]
//	en = ["Hello!", "Hi there!"]
//	es = ["¡Hola!"]
//
// On a missing or unusable file the built-in defaults are returned and the
// condition is logged; Load never fails.
func Load(path string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{entries: defaultResponses(), logger: logger}
	if path == "" {
		return c
	}

	var raw map[string]map[string][]string
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		logger.Warn("could not load response file, using defaults", "path", path, "error", err)
		return c
	}

	entries := make(map[Category]map[language.Code][]string, len(raw))
	for cat, byLang := range raw {
		langs := make(map[language.Code][]string, len(byLang))
		for lang, phrases := range byLang {
			langs[language.Normalize(lang)] = phrases
		}
		entries[Category(cat)] = langs
	}

	if err := validate(entries); err != nil {
		logger.Warn("response file rejected, using defaults", "path", path, "error", err)
		return c
	}

	logger.Info("loaded response file", "path", path, "categories", len(entries))
	c.entries = entries
	return c
}

// validate enforces the catalog invariant: every category carries a non-empty
// English entry, and the fallback category exists.
func validate(entries map[Category]map[language.Code][]string) error {
	if _, ok := entries[Fallback]; !ok {
		return fmt.Errorf("missing %q category", Fallback)
	}
	for cat, byLang := range entries {
		if len(byLang[language.English]) == 0 {
			return fmt.Errorf("category %q has no English phrases", cat)
		}
		for lang, phrases := range byLang {
			if len(phrases) == 0 {
				return fmt.Errorf("category %q language %q is empty", cat, lang)
			}
		}
	}
	return nil
}

// Has reports whether the catalog carries phrases for the category and
// language.
func (c *Catalog) Has(cat Category, lang language.Code) bool {
	return len(c.entries[cat][lang]) > 0
}

// Response picks a phrase for the category in the requested language.
// When the language is absent an English phrase is chosen and machine
// translated via translate; if that fails the English phrase is returned
// verbatim. Response never fails.
func (c *Catalog) Response(ctx context.Context, cat Category, lang language.Code, translate TranslateFunc) string {
	if phrases := c.entries[cat][lang]; len(phrases) > 0 {
		return phrases[rand.IntN(len(phrases))]
	}

	phrases := c.entries[cat][language.English]
	if len(phrases) == 0 {
		return noResponse
	}
	english := phrases[rand.IntN(len(phrases))]
	if translate == nil {
		return english
	}

	translated := translate(ctx, english, language.English, lang)
	if translated == "" || translated == english {
		return english
	}
	// The dispatcher degrades to a sentinel instead of failing; that sentinel
	// is not a translation.
	if translated == xlate.Unavailable {
		c.logger.Debug("translation unavailable, serving English phrase",
			"category", cat, "lang", lang)
		return english
	}
	return translated
}
