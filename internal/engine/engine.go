// Package engine implements the per-conversation turn loop.
//
// The engine orchestrates detection, translation, intent classification and
// response selection for one conversation. It is a strict state machine with
// two states, Active and Terminated; the only transitions to Terminated are
// an exact exit command and end of input. No error inside a turn is fatal to
// the session.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/polyglotbot/polyglot/internal/catalog"
	"github.com/polyglotbot/polyglot/internal/detect"
	"github.com/polyglotbot/polyglot/internal/intent"
	"github.com/polyglotbot/polyglot/internal/language"
	"github.com/polyglotbot/polyglot/internal/speech"
	xlate "github.com/polyglotbot/polyglot/internal/translate"
)

const (
	promptForInput  = "I didn't catch that. Can you please say something?"
	voiceOnReply    = "Voice mode activated. I'll speak my responses."
	voiceOffReply   = "Voice mode deactivated."
	recoverableNote = "Sorry, I ran into a problem with that one. Let's keep going."
)

// exitWords terminate the session, matched exactly against the trimmed,
// lower-cased whole input. Substring matching would end the session on
// inputs like "goodbye to my old job".
var exitWords = map[string]bool{
	"exit": true, "quit": true, "bye": true, "goodbye": true,
}

// listCommands request the language list, matched exactly.
var listCommands = map[string]bool{
	"languages": true, "list languages": true, "show languages": true, "language list": true,
}

// helpCommands request the help text, matched exactly.
var helpCommands = map[string]bool{
	"help": true, "commands": true, "options": true,
}

// Translator is the translation capability the engine needs. It degrades to
// a sentinel string instead of failing; *translate.Dispatcher satisfies it.
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Code) string
}

// Session is the mutable per-conversation state. It is created at
// conversation start, mutated only by the engine, and discarded when the
// conversation ends.
type Session struct {
	Lang         language.Code
	VoiceEnabled bool
	History      []string
}

// Reply is the composed outcome of one turn.
type Reply struct {
	// Parts are the display lines, in order: optional English echo of the
	// input, the response in the session language, optional English echo of
	// the response.
	Parts []string

	// Terminated is set when the turn ended the session.
	Terminated bool
}

// String joins the reply parts for plain-text surfaces.
func (r Reply) String() string {
	return strings.Join(r.Parts, "\n")
}

// Engine drives one conversation. It is not safe for concurrent use; a
// conversation processes one turn at a time.
type Engine struct {
	detector   detect.Detector
	translator Translator
	responses  *catalog.Catalog
	speaker    speech.Speaker
	logger     *slog.Logger
	sess       *Session
}

// New creates an engine with explicit collaborators. speaker may be nil when
// voice output is not wired at all.
func New(detector detect.Detector, translator Translator, responses *catalog.Catalog, speaker speech.Speaker, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		detector:   detector,
		translator: translator,
		responses:  responses,
		speaker:    speaker,
		logger:     logger,
		sess:       &Session{Lang: language.English},
	}
}

// Session exposes the conversation state, mainly for the CLI prompt and for
// tests.
func (e *Engine) Session() *Session {
	return e.sess
}

// Greet opens a conversation. When initialText is non-empty its language is
// detected and adopted before greeting, so callers hear the greeting in
// their own language. Used by the voice-assistant integration on call start.
func (e *Engine) Greet(ctx context.Context, initialText string) Reply {
	if strings.TrimSpace(initialText) != "" {
		if detected := e.detector.Detect(initialText); language.Known(detected) {
			e.sess.Lang = detected
		}
	}
	greeting := e.responses.Response(ctx, catalog.Greeting, e.sess.Lang, e.translator.Translate)
	e.speak(greeting)
	return Reply{Parts: []string{greeting}}
}

// Turn processes one input and returns the composed reply. Unexpected
// failures are converted into a recoverable notice; the session stays active.
func (e *Engine) Turn(ctx context.Context, input string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("turn failed, continuing session", "panic", r)
			reply = Reply{Parts: []string{recoverableNote}}
		}
	}()

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Reply{Parts: []string{promptForInput}}
	}

	lc := strings.ToLower(trimmed)
	if exitWords[lc] {
		farewell := e.responses.Response(ctx, catalog.Farewell, e.sess.Lang, e.translator.Translate)
		e.logger.Info("session terminated by exit command")
		return Reply{Parts: []string{farewell}, Terminated: true}
	}

	e.sess.History = append(e.sess.History, input)

	if reply, handled := e.command(ctx, lc); handled {
		return reply
	}

	if code, ok := language.MatchAlias(lc); ok {
		return e.switchLanguage(ctx, code)
	}

	// Detection always overrides the prior language once confident, but only
	// for codes in the registry; detectors can name languages the catalog
	// and alias tables have no entries for.
	if detected := e.detector.Detect(trimmed); language.Known(detected) && detected != e.sess.Lang {
		e.logger.Info("language detected", "lang", detected, "name", language.Name(detected))
		e.sess.Lang = detected
	}

	var parts []string
	if e.sess.Lang != language.English {
		echo := e.translator.Translate(ctx, trimmed, e.sess.Lang, language.English)
		parts = append(parts, "You said (in English): "+echo)
	}

	// Classification runs on the original text, not the translation.
	category := intent.Classify(trimmed)
	response := e.responses.Response(ctx, category, e.sess.Lang, e.translator.Translate)
	parts = append(parts, response)

	if e.sess.Lang != language.English {
		back := e.translator.Translate(ctx, response, e.sess.Lang, language.English)
		if back != response {
			parts = append(parts, "(In English: "+back+")")
		}
	}

	e.speak(response)
	return Reply{Parts: parts}
}

// Terminate produces the farewell for an externally ended conversation, such
// as end-of-input on the CLI.
func (e *Engine) Terminate(ctx context.Context) Reply {
	farewell := e.responses.Response(ctx, catalog.Farewell, e.sess.Lang, e.translator.Translate)
	return Reply{Parts: []string{farewell}, Terminated: true}
}

// command handles the fixed command vocabulary. The bool result reports
// whether the input was a command.
func (e *Engine) command(ctx context.Context, lc string) (Reply, bool) {
	switch {
	case helpCommands[lc]:
		help := e.responses.Response(ctx, catalog.Help, e.sess.Lang, e.translator.Translate)
		return Reply{Parts: []string{help}}, true
	case listCommands[lc]:
		return Reply{Parts: []string{e.languageList(ctx)}}, true
	case strings.Contains(lc, "voice on"):
		e.sess.VoiceEnabled = true
		return Reply{Parts: []string{voiceOnReply}}, true
	case strings.Contains(lc, "voice off"):
		e.sess.VoiceEnabled = false
		return Reply{Parts: []string{voiceOffReply}}, true
	}
	return Reply{}, false
}

// languageList renders the language registry with the heading translated
// into the session language. The entries themselves stay in English; only
// the heading follows the conversation.
func (e *Engine) languageList(ctx context.Context) string {
	list := language.FormatList()
	if e.sess.Lang == language.English {
		return list
	}
	heading, rest, ok := strings.Cut(list, "\n")
	if !ok {
		return list
	}
	translated := e.translator.Translate(ctx, heading, language.English, e.sess.Lang)
	if translated == "" || translated == xlate.Unavailable {
		return list
	}
	return translated + "\n" + rest
}

// switchLanguage updates the session language and confirms in the new
// language. Switching to the current language is a no-op state-wise but
// still confirmed.
func (e *Engine) switchLanguage(ctx context.Context, code language.Code) Reply {
	e.sess.Lang = code
	confirm := "Switching to " + language.Name(code) + "."
	parts := []string{confirm}
	if code != language.English {
		if translated := e.translator.Translate(ctx, confirm, language.English, code); translated != confirm {
			parts = append(parts, translated)
		}
	}
	e.logger.Info("language switched", "lang", code)
	e.speak(parts[len(parts)-1])
	return Reply{Parts: parts}
}

// speak hands text to the speech collaborator on a detached goroutine. The
// task's completion is not awaited and its errors never reach the turn.
func (e *Engine) speak(text string) {
	if !e.sess.VoiceEnabled || e.speaker == nil {
		return
	}
	lang := e.sess.Lang
	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("speech backend panicked", "panic", r)
			}
		}()
		if err := e.speaker.Say(text, lang); err != nil {
			e.logger.Warn("speech output failed", "error", err)
		}
	}()
}
