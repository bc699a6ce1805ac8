// Package detect implements best-effort language detection.
//
// Detection runs in two passes: a fast trigram detector (whatlanggo) whose
// answer is accepted only above a confidence threshold, and a slower
// statistical detector (lingua) consulted when the fast pass is unsure.
// Both detectors are deterministic for a given input, so detection results
// are reproducible across runs.
package detect

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"
	"github.com/pemistahl/lingua-go"

	"github.com/polyglotbot/polyglot/internal/language"
)

// fastConfidenceThreshold is the minimum whatlanggo confidence at which the
// fast pass is trusted without consulting the fallback detector.
const fastConfidenceThreshold = 0.6

// Detector returns a best-guess language code for a piece of text.
// Implementations never fail; internal errors degrade to language.Unknown.
type Detector interface {
	Detect(text string) language.Code
}

// fastPass is the quick low-confidence detector.
type fastPass interface {
	detect(text string) (language.Code, float64)
}

// fallbackPass is the exhaustive detector consulted when the fast pass is unsure.
type fallbackPass interface {
	detect(text string) language.Code
}

// Chain is the production Detector: whatlanggo first, lingua as fallback.
type Chain struct {
	fast     fastPass
	fallback fallbackPass
	logger   *slog.Logger
}

// NewChain builds the two-pass detector. The lingua model is built once and
// shared by all chains in the process; building it is the expensive part.
func NewChain(logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{
		fast:     whatlangDetector{},
		fallback: linguaDetector{},
		logger:   logger,
	}
}

// newChainWithPasses is the test seam.
func newChainWithPasses(fast fastPass, fallback fallbackPass, logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{fast: fast, fallback: fallback, logger: logger}
}

// Detect returns the detected language code or language.Unknown.
func (c *Chain) Detect(text string) language.Code {
	if strings.TrimSpace(text) == "" {
		return language.Unknown
	}

	code, score := c.fast.detect(text)
	if code != language.Unknown && score >= fastConfidenceThreshold {
		c.logger.Debug("fast detection accepted", "lang", code, "score", score)
		return code
	}

	if code := c.fallback.detect(text); code != language.Unknown {
		c.logger.Debug("fallback detection", "lang", code)
		return code
	}
	return language.Unknown
}

// whatlangDetector adapts whatlanggo to the fast pass.
type whatlangDetector struct{}

func (whatlangDetector) detect(text string) (language.Code, float64) {
	info := whatlanggo.Detect(text)
	code := language.Normalize(info.Lang.Iso6391())
	if code == language.Unknown {
		return language.Unknown, 0
	}
	return code, info.Confidence
}

// linguaModel is expensive to build, so it is constructed lazily and shared.
var linguaModel = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		WithLowAccuracyMode().
		Build()
})

// linguaDetector adapts lingua-go to the fallback pass.
type linguaDetector struct{}

func (linguaDetector) detect(text string) language.Code {
	lang, ok := linguaModel().DetectLanguageOf(text)
	if !ok {
		return language.Unknown
	}
	return language.Normalize(lang.IsoCode639_1().String())
}
