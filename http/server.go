package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/freshrag"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultAddr is the default listen address for the query server.
const DefaultAddr = ":8080"

// noAnswerMessage is returned when retrieval finds nothing relevant.
const noAnswerMessage = "I couldn't find any relevant information in the Freshservice documentation for your query. Please try asking about specific API endpoints like creating tickets, updating tickets, or ticket attributes."

// Server exposes the retrieval engine over HTTP. It serves queries against
// a single immutable Documentation snapshot; the snapshot is shared across
// request handlers without synchronization.
type Server struct {
	server *http.Server

	docs      *freshrag.Documentation
	retriever freshrag.Retriever
	asker     freshrag.Asker
	limiter   *rate.Limiter
	logger    *slog.Logger
	addr      string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithAsker sets the language model used to generate answers. Without an
// asker the server degrades to returning the retrieved context directly.
func WithAsker(a freshrag.Asker) ServerOption {
	return func(s *Server) {
		s.asker = a
	}
}

// WithLogger sets the request logger. Defaults to the slog default logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// WithQueryRate limits the sustained query rate, protecting the LLM
// backend. Defaults to 5 queries per second with a burst of 10.
func WithQueryRate(perSecond float64, burst int) ServerOption {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewServer creates a Server over the given snapshot and retriever.
func NewServer(docs *freshrag.Documentation, retriever freshrag.Retriever, opts ...ServerOption) *Server {
	s := &Server{
		docs:      docs,
		retriever: retriever,
		limiter:   rate.NewLimiter(5, 10),
		logger:    slog.Default(),
		addr:      DefaultAddr,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/query", s.handleQuery)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/endpoints", s.handleEndpoints)

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the server's HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe runs the server until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.addr, "endpoints", len(s.docs.Endpoints))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Answer      string   `json:"answer"`
	Sources     []string `json:"sources"`
	Confidence  float32  `json:"confidence"`
	Explanation string   `json:"explanation"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "query rate limit exceeded")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query required")
		return
	}

	requestID := uuid.NewString()
	begin := time.Now()

	result := s.retriever.Retrieve(query)
	answer := s.answer(r.Context(), requestID, query, result)

	explanation := fmt.Sprintf("Found %d relevant endpoints. ", len(result.Matches))
	if len(result.Matches) > 0 {
		explanation += fmt.Sprintf("Best match: %q with score %.2f. ",
			result.Matches[0].Endpoint.DisplayName(), result.Matches[0].Score)
	}
	explanation += fmt.Sprintf("Overall confidence: %.2f", result.Confidence)

	s.logger.Info("query handled",
		"requestId", requestID,
		"query", query,
		"matches", len(result.Matches),
		"topScore", result.TopScore(),
		"confidence", result.Confidence,
		"duration", time.Since(begin),
	)

	writeJSON(w, http.StatusOK, queryResponse{
		Answer:      answer,
		Sources:     []string{"Freshservice API Documentation"},
		Confidence:  result.Confidence,
		Explanation: explanation,
	})
}

// answer produces the response text. The asker is only consulted with a
// non-empty context; on asker failure the retrieved context itself is
// returned so the caller still gets usable grounding.
func (s *Server) answer(ctx context.Context, requestID, query string, result freshrag.RetrievalResult) string {
	if len(result.Matches) == 0 {
		return noAnswerMessage
	}
	if s.asker == nil {
		return "Here is the relevant documentation:\n\n" + result.Context
	}

	answer, err := s.asker.Ask(ctx, query, result.Context)
	if err != nil {
		s.logger.Warn("asker failed, returning raw context",
			"requestId", requestID,
			"error", freshrag.ErrorMessage(err),
		)
		return "I found some relevant information but encountered an error processing it. Here's what I found:\n\n" + result.Context
	}
	return answer
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleEndpoints(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(s.docs.Endpoints))
	for _, e := range s.docs.Endpoints {
		names = append(names, e.DisplayName())
	}

	resp := map[string]any{
		"totalEndpoints": len(s.docs.Endpoints),
		"endpoints":      names,
	}
	if len(s.docs.Endpoints) > 0 {
		resp["sampleEndpoint"] = s.docs.Endpoints[0]
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
