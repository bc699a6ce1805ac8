// Package webhook implements the voice-assistant integration endpoint.
//
// The voice platform notifies us of call events over HTTP. Two event kinds
// carry the core contract: "call.started" opens a session and greets the
// caller in their detected language, "user.said" routes an utterance through
// the conversation engine. Everything else is acknowledged and logged.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/polyglotbot/polyglot/internal/engine"
)

// Event kinds delivered by the voice platform.
const (
	EventCallStarted = "call.started"
	EventUserSaid    = "user.said"
)

// defaultCallID groups events that arrive without a call identifier into one
// session, matching the single-session behavior of platforms that omit it.
const defaultCallID = "default"

// Event is an incoming platform notification.
type Event struct {
	// Event is the event kind ("call.started", "user.said").
	Event string `json:"event"`

	// CallID identifies the call the event belongs to. Optional.
	CallID string `json:"call_id,omitempty"`

	// Text is the utterance or initial transcript associated with the event.
	Text string `json:"text,omitempty"`
}

// Ack is the acknowledgement returned for every event.
type Ack struct {
	Status     string `json:"status"`
	Reply      string `json:"reply,omitempty"`
	Terminated bool   `json:"terminated,omitempty"`
}

// EngineFactory creates a fresh conversation engine for a new call.
type EngineFactory func() *engine.Engine

// session serializes turns for one call. Engines process one turn at a time;
// the mutex enforces that for concurrent webhook deliveries of the same call.
type session struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// Server is the webhook HTTP transport.
type Server struct {
	port      int
	newEngine EngineFactory
	logger    *slog.Logger
	server    *http.Server
	mu        sync.Mutex
	sessions  map[string]*session
}

// New creates a webhook server on the given port.
func New(port int, newEngine EngineFactory, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		port:      port,
		newEngine: newEngine,
		logger:    logger,
		sessions:  make(map[string]*session),
	}
}

// Handler returns the webhook route table. Exposed separately from Listen so
// tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// POST /webhook — voice platform event notifications.
	mux.HandleFunc("POST /webhook", s.handleEvent)

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}

// Listen starts the HTTP server. It blocks until the context is cancelled.
func (s *Server) Listen(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("webhook listening", "port", s.port)

	go func() {
		<-ctx.Done()
		s.logger.Info("webhook shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("webhook listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleEvent processes a POST /webhook notification.
//
// @Summary     Receive a voice platform event
// @Description Accepts call lifecycle events. "call.started" opens a session and greets the
// @Description caller in their detected language; "user.said" routes the utterance through the
// @Description conversation engine. Unknown events are acknowledged without action.
// @Tags        webhook
// @Accept      json
// @Produce     json
// @Param       event  body      Event  true  "Event notification"
// @Success     200  {object}  Ack  "Acknowledgement with optional reply text"
// @Failure     400  {string}  string  "Invalid request body"
// @Router      /webhook [post]
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var evt Event
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	callID := evt.CallID
	if callID == "" {
		callID = defaultCallID
	}
	logger := s.logger.With("event", evt.Event, "call_id", callID)

	var ack Ack
	switch evt.Event {
	case EventCallStarted:
		ack = s.startCall(r.Context(), callID, evt.Text)
		logger.Info("call started")
	case EventUserSaid:
		ack = s.handleUtterance(r.Context(), callID, evt.Text)
		logger.Info("utterance handled", "terminated", ack.Terminated)
	default:
		logger.Warn("unknown event kind, acknowledged without action")
		ack = Ack{Status: "ok"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ack)
}

// startCall creates (or replaces) the session for callID and greets.
func (s *Server) startCall(ctx context.Context, callID, initialText string) Ack {
	sess := &session{eng: s.newEngine()}
	s.mu.Lock()
	s.sessions[callID] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	reply := sess.eng.Greet(ctx, initialText)
	sess.mu.Unlock()

	return Ack{Status: "ok", Reply: reply.String()}
}

// handleUtterance routes text to the call's engine. An utterance for an
// unknown call implicitly opens a session, so a missed call.started event
// does not strand the caller.
func (s *Server) handleUtterance(ctx context.Context, callID, text string) Ack {
	s.mu.Lock()
	sess, ok := s.sessions[callID]
	if !ok {
		sess = &session{eng: s.newEngine()}
		s.sessions[callID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	reply := sess.eng.Turn(ctx, text)
	sess.mu.Unlock()

	if reply.Terminated {
		s.mu.Lock()
		delete(s.sessions, callID)
		s.mu.Unlock()
	}

	return Ack{Status: "ok", Reply: reply.String(), Terminated: reply.Terminated}
}

// ActiveSessions reports the number of open calls, for diagnostics.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
