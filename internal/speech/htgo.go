package speech

import (
	"fmt"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/handlers"

	"github.com/polyglotbot/polyglot/internal/language"
)

// HTGo speaks through the htgo-tts library, which fetches synthesized audio
// and plays it with the native player. Synthesis is per-call, so a single
// HTGo instance can serve any language.
type HTGo struct {
	folder string
}

// NewHTGo creates an htgo-tts speaker. folder is where fetched audio files
// are cached.
func NewHTGo(folder string) *HTGo {
	if folder == "" {
		folder = "audio"
	}
	return &HTGo{folder: folder}
}

// Say synthesizes and plays text in the given language. The language code is
// passed straight through; htgo-tts voices use ISO 639-1 codes.
func (h *HTGo) Say(text string, lang language.Code) error {
	if lang == language.Unknown {
		lang = language.English
	}
	tts := htgotts.Speech{
		Folder:   h.folder,
		Language: string(lang),
		Handler:  &handlers.Native{},
	}
	if err := tts.Speak(text); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}
