package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/polyglotbot/polyglot/internal/catalog"
	"github.com/polyglotbot/polyglot/internal/engine"
	"github.com/polyglotbot/polyglot/internal/language"
)

type stubDetector struct {
	code language.Code
}

func (s stubDetector) Detect(string) language.Code { return s.code }

type identityTranslator struct{}

func (identityTranslator) Translate(_ context.Context, text string, source, target language.Code) string {
	return text
}

func newTestServer(t *testing.T, det language.Code) (*Server, *httptest.Server) {
	t.Helper()
	factory := func() *engine.Engine {
		return engine.New(stubDetector{det}, identityTranslator{}, catalog.Load("", nil), nil, nil)
	}
	s := New(0, factory, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func post(t *testing.T, url string, evt Event) Ack {
	t.Helper()
	body, err := json.Marshal(evt)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url+"/webhook", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /webhook: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var ack Ack
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	return ack
}

func TestCallStartedGreetsInDetectedLanguage(t *testing.T) {
	t.Parallel()

	s, ts := newTestServer(t, "es")
	ack := post(t, ts.URL, Event{Event: EventCallStarted, CallID: "c1", Text: "¿Cómo estás?"})
	if ack.Status != "ok" {
		t.Errorf("status = %q", ack.Status)
	}
	if ack.Reply == "" {
		t.Error("call.started must carry a greeting reply")
	}
	if s.ActiveSessions() != 1 {
		t.Errorf("ActiveSessions = %d, want 1", s.ActiveSessions())
	}
}

func TestUserSaidRoutesToEngine(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, language.Unknown)
	post(t, ts.URL, Event{Event: EventCallStarted, CallID: "c1"})
	ack := post(t, ts.URL, Event{Event: EventUserSaid, CallID: "c1", Text: "Hello"})
	if ack.Reply == "" {
		t.Error("user.said must produce a reply")
	}
	if ack.Terminated {
		t.Error("greeting must not terminate the call")
	}
}

func TestUserSaidWithoutCallStarted(t *testing.T) {
	t.Parallel()

	s, ts := newTestServer(t, language.Unknown)
	ack := post(t, ts.URL, Event{Event: EventUserSaid, CallID: "c9", Text: "help"})
	if ack.Reply == "" {
		t.Error("implicit session must still reply")
	}
	if s.ActiveSessions() != 1 {
		t.Errorf("ActiveSessions = %d, want 1", s.ActiveSessions())
	}
}

func TestExitUtteranceClosesSession(t *testing.T) {
	t.Parallel()

	s, ts := newTestServer(t, language.Unknown)
	post(t, ts.URL, Event{Event: EventCallStarted, CallID: "c1"})
	ack := post(t, ts.URL, Event{Event: EventUserSaid, CallID: "c1", Text: "goodbye"})
	if !ack.Terminated {
		t.Error("exit utterance must terminate")
	}
	if s.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions = %d after termination, want 0", s.ActiveSessions())
	}
}

func TestUnknownEventAcknowledged(t *testing.T) {
	t.Parallel()

	s, ts := newTestServer(t, language.Unknown)
	ack := post(t, ts.URL, Event{Event: "call.metrics", CallID: "c1"})
	if ack.Status != "ok" {
		t.Errorf("status = %q, want ok", ack.Status)
	}
	if ack.Reply != "" {
		t.Errorf("unknown event must not reply, got %q", ack.Reply)
	}
	if s.ActiveSessions() != 0 {
		t.Error("unknown event must not open a session")
	}
}

func TestInvalidBodyRejected(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, language.Unknown)
	resp, err := http.Post(ts.URL+"/webhook", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSessionsAreIsolatedPerCall(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, language.Unknown)
	post(t, ts.URL, Event{Event: EventCallStarted, CallID: "a"})
	post(t, ts.URL, Event{Event: EventCallStarted, CallID: "b"})
	post(t, ts.URL, Event{Event: EventUserSaid, CallID: "a", Text: "switch to german"})

	ack := post(t, ts.URL, Event{Event: EventUserSaid, CallID: "b", Text: "Hello"})
	// Call b stays in English: no translated echo parts in its reply.
	if strings.Contains(ack.Reply, "You said (in English)") {
		t.Errorf("call b leaked call a's language switch: %q", ack.Reply)
	}
}
