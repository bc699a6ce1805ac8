package detect

import (
	"testing"

	"github.com/polyglotbot/polyglot/internal/language"
)

type stubFast struct {
	code  language.Code
	score float64
}

func (s stubFast) detect(string) (language.Code, float64) { return s.code, s.score }

type stubFallback struct {
	code language.Code
}

func (s stubFallback) detect(string) language.Code { return s.code }

func TestChainAcceptsConfidentFastPass(t *testing.T) {
	t.Parallel()

	c := newChainWithPasses(stubFast{"es", 0.95}, stubFallback{"de"}, nil)
	if got := c.Detect("Hola, ¿cómo estás?"); got != "es" {
		t.Errorf("Detect = %q, want es", got)
	}
}

func TestChainFallsBackOnLowConfidence(t *testing.T) {
	t.Parallel()

	c := newChainWithPasses(stubFast{"es", 0.3}, stubFallback{"de"}, nil)
	if got := c.Detect("Wie geht's?"); got != "de" {
		t.Errorf("Detect = %q, want de", got)
	}
}

func TestChainFallsBackWhenFastPassFails(t *testing.T) {
	t.Parallel()

	c := newChainWithPasses(stubFast{language.Unknown, 0}, stubFallback{"hi"}, nil)
	if got := c.Detect("नमस्ते"); got != "hi" {
		t.Errorf("Detect = %q, want hi", got)
	}
}

func TestChainUnknownWhenBothFail(t *testing.T) {
	t.Parallel()

	c := newChainWithPasses(stubFast{language.Unknown, 0}, stubFallback{language.Unknown}, nil)
	if got := c.Detect("12345 !!!"); got != language.Unknown {
		t.Errorf("Detect = %q, want unknown", got)
	}
}

func TestChainBlankInput(t *testing.T) {
	t.Parallel()

	// Blank input must short-circuit before either pass runs.
	c := newChainWithPasses(stubFast{"es", 1}, stubFallback{"de"}, nil)
	if got := c.Detect("   "); got != language.Unknown {
		t.Errorf("Detect(blank) = %q, want unknown", got)
	}
}

func TestChainDeterministic(t *testing.T) {
	t.Parallel()

	c := NewChain(nil)
	const text = "Bonjour, comment allez-vous aujourd'hui mes amis?"
	first := c.Detect(text)
	for i := 0; i < 10; i++ {
		if got := c.Detect(text); got != first {
			t.Fatalf("detection not deterministic: %q then %q", first, got)
		}
	}
}
