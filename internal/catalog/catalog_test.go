package catalog

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/polyglotbot/polyglot/internal/language"
	"github.com/polyglotbot/polyglot/internal/translate"
)

func TestResponseMembership(t *testing.T) {
	t.Parallel()

	c := Load("", nil)
	ctx := context.Background()

	greetings := defaultResponses()[Greeting]["es"]
	for i := 0; i < 20; i++ {
		got := c.Response(ctx, Greeting, "es", nil)
		if !slices.Contains(greetings, got) {
			t.Fatalf("Response = %q, not in the es greeting set", got)
		}
	}
}

func TestResponseEnglishFallbackWithTranslation(t *testing.T) {
	t.Parallel()

	c := Load("", nil)
	translated := func(ctx context.Context, text string, source, target language.Code) string {
		if source != language.English || target != "pl" {
			t.Errorf("translate called with (%s, %s)", source, target)
		}
		return "przetłumaczone"
	}

	// Polish is absent from the defaults, so the English phrase is translated.
	got := c.Response(context.Background(), Greeting, "pl", translated)
	if got != "przetłumaczone" {
		t.Errorf("Response = %q, want the translated phrase", got)
	}
}

func TestResponseEnglishFallbackOnTranslationFailure(t *testing.T) {
	t.Parallel()

	c := Load("", nil)
	failing := func(ctx context.Context, text string, source, target language.Code) string {
		return translate.Unavailable
	}

	english := defaultResponses()[Greeting]["en"]
	got := c.Response(context.Background(), Greeting, "pl", failing)
	if !slices.Contains(english, got) {
		t.Errorf("Response = %q, want an English phrase verbatim", got)
	}
}

func TestResponseUnknownCategory(t *testing.T) {
	t.Parallel()

	c := Load("", nil)
	if got := c.Response(context.Background(), Category("weather"), "en", nil); got != noResponse {
		t.Errorf("Response = %q, want placeholder", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "responses.toml")
	data := `
[greeting]
en = ["Howdy!"]
de = ["Moin!"]

[fallback]
en = ["Hm."]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Load(path, nil)
	if got := c.Response(context.Background(), Greeting, "de", nil); got != "Moin!" {
		t.Errorf("Response = %q, want Moin!", got)
	}
	if !c.Has(Fallback, language.English) {
		t.Error("fallback/en missing after file load")
	}
}

func TestLoadRejectsFileWithoutEnglish(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "responses.toml")
	data := `
[greeting]
de = ["Moin!"]

[fallback]
en = ["Hm."]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	// The file violates the every-category-has-English invariant, so the
	// defaults must be kept.
	c := Load(path, nil)
	if got := c.Response(context.Background(), Greeting, "de", nil); got == "Moin!" {
		t.Error("invalid file was accepted")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	c := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	if !c.Has(Fallback, language.English) {
		t.Error("defaults not loaded for a missing file")
	}
}

func TestDefaultsSatisfyInvariant(t *testing.T) {
	t.Parallel()

	if err := validate(defaultResponses()); err != nil {
		t.Errorf("built-in defaults violate the catalog invariant: %v", err)
	}
}
