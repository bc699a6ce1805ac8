// Package speech defines the text-to-speech output collaborator.
//
// Speech is a side channel: the conversation engine hands responses to a
// Speaker on a best-effort basis and never waits for or depends on the
// result.
package speech

import (
	"log/slog"

	"github.com/polyglotbot/polyglot/internal/language"
)

// Speaker converts text to audible speech.
type Speaker interface {
	// Say speaks the text in the given language. Errors are advisory; the
	// caller logs and discards them.
	Say(text string, lang language.Code) error
}

// NoOp is a Speaker that does nothing. Used when voice output is disabled.
type NoOp struct {
	logger *slog.Logger
}

// NewNoOp creates a no-op speaker.
func NewNoOp(logger *slog.Logger) *NoOp {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoOp{logger: logger}
}

// Say logs the text instead of speaking it.
func (n *NoOp) Say(text string, lang language.Code) error {
	n.logger.Debug("speech disabled, would say", "lang", lang, "text", text)
	return nil
}
