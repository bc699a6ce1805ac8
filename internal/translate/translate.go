// Package translate implements machine translation behind a fallback chain
// of providers.
//
// Each provider declares whether its credentials are configured and whether
// it supports a given language pair. The dispatcher walks its providers in
// priority order and returns the first successful translation; when every
// provider is skipped or fails it returns a fixed sentinel string instead of
// an error, so callers can always display something.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/polyglotbot/polyglot/internal/language"
)

// Unavailable is returned when no provider could translate the request.
// It is plain text on purpose: translation failure is a degraded result,
// not a fatal condition.
const Unavailable = "(Translation unavailable for this language pair)"

// Provider is a single translation backend.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Available reports whether the provider's credentials are configured.
	// An unavailable provider is skipped, not treated as failed.
	Available() bool

	// Supports reports whether the provider can translate the pair.
	Supports(source, target language.Code) bool

	// Translate converts text from source to target.
	Translate(ctx context.Context, text string, source, target language.Code) (string, error)
}

// Dispatcher tries providers in a fixed priority order. A Dispatcher is
// conversation-scoped and not safe for concurrent use.
type Dispatcher struct {
	providers []Provider
	logger    *slog.Logger
	errs      []string
}

// NewDispatcher creates a dispatcher over the given providers. The slice
// order is the priority order and does not change afterwards.
func NewDispatcher(logger *slog.Logger, providers ...Provider) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{providers: providers, logger: logger}
}

// Translate returns the first provider's successful translation, or the
// Unavailable sentinel when the whole chain is exhausted. It never returns
// an error to the caller.
func (d *Dispatcher) Translate(ctx context.Context, text string, source, target language.Code) string {
	d.errs = nil

	if text == "" || source == target {
		return text
	}

	for _, p := range d.providers {
		if !p.Available() {
			d.logger.Debug("provider skipped, not configured", "provider", p.Name())
			continue
		}
		if !p.Supports(source, target) {
			d.logger.Debug("provider skipped, pair unsupported",
				"provider", p.Name(), "source", source, "target", target)
			continue
		}

		start := time.Now()
		result, err := p.Translate(ctx, text, source, target)
		observeRequest(p.Name(), err == nil && result != "", time.Since(start))
		if err != nil {
			d.errs = append(d.errs, fmt.Sprintf("%s: %v", p.Name(), err))
			d.logger.Warn("provider failed, trying next",
				"provider", p.Name(), "error", err)
			continue
		}
		if result == "" {
			d.errs = append(d.errs, fmt.Sprintf("%s: empty result", p.Name()))
			continue
		}

		d.logger.Debug("translation complete",
			"provider", p.Name(), "source", source, "target", target,
			"duration", time.Since(start))
		return result
	}

	d.logger.Warn("all translation providers exhausted",
		"source", source, "target", target, "errors", d.errs)
	return Unavailable
}

// LastErrors returns the provider errors recorded during the previous
// Translate call, for diagnostics only.
func (d *Dispatcher) LastErrors() []string {
	return d.errs
}
