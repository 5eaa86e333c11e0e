package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/chomsky"
	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/grammar"
	"github.com/aretw0/chomsky/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// Server exposes a Toolkit over JSON.
type Server struct {
	Toolkit *chomsky.Toolkit
	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithMetricsHandler mounts h (usually promhttp.Handler) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for the toolkit.
func NewHandler(tk *chomsky.Toolkit, opts ...Option) (http.Handler, error) {
	server := &Server{Toolkit: tk, logger: tk.Logger()}
	for _, opt := range opts {
		opt(server)
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc, server.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build request router: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(server.logRequests)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(validate)

		r.Get("/healthz", server.GetHealth)
		r.Get("/info", server.GetInfo)
		r.Post("/classify", server.Classify)
		r.Post("/determinism", server.CheckDeterminism)
		r.Post("/determinize", server.Determinize)
		r.Post("/accepts", server.Accepts)
		r.Post("/generate", server.Generate)
		r.Post("/convert/grammar", server.AutomatonToGrammar)
		r.Post("/convert/automaton", server.GrammarToAutomaton)
		r.Get("/definitions", server.ListDefinitions)
		r.Get("/definitions/{name}", server.GetDefinition)
		r.Put("/definitions/{name}", server.PutDefinition)
		r.Delete("/definitions/{name}", server.DeleteDefinition)
	})

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Chomsky API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "chomsky-http",
		"version":     strings.TrimSpace(chomsky.Version),
		"api_version": apiVersion,
	})
}

// ClassifyResponse is the body returned by POST /classify.
type ClassifyResponse struct {
	Type        domain.ChomskyType `json:"type"`
	Description string             `json:"description"`
	grammar.Analysis
}

// Classify handles the POST /classify request.
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	g, ok := s.decodeGrammar(w, r)
	if !ok {
		return
	}
	analysis := s.Toolkit.Classify(r.Context(), g)
	writeJSON(w, http.StatusOK, ClassifyResponse{
		Type:        analysis.Type(),
		Description: analysis.Type().String(),
		Analysis:    analysis,
	})
}

// CheckDeterminism handles the POST /determinism request.
func (s *Server) CheckDeterminism(w http.ResponseWriter, r *http.Request) {
	a, ok := s.decodeAutomaton(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Toolkit.CheckDeterminism(r.Context(), a))
}

// Determinize handles the POST /determinize request.
func (s *Server) Determinize(w http.ResponseWriter, r *http.Request) {
	a, ok := s.decodeAutomaton(w, r)
	if !ok {
		return
	}
	dfa, err := s.Toolkit.Determinize(r.Context(), a)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.FromAutomaton("", dfa).Automaton)
}

type acceptsRequest struct {
	Automaton map[string]any `json:"automaton"`
	Inputs    []string       `json:"inputs"`
}

// Accepts handles the POST /accepts request.
func (s *Server) Accepts(w http.ResponseWriter, r *http.Request) {
	var body acceptsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	a, err := buildAutomaton(body.Automaton)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": s.Toolkit.Accepts(r.Context(), a, body.Inputs...),
	})
}

type generateRequest struct {
	Grammar map[string]any `json:"grammar"`
	Count   *int           `json:"count"`
	Seed    int64          `json:"seed"`
}

// Generate handles the POST /generate request.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	g, err := buildGrammar(body.Grammar)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	count := 10
	if body.Count != nil {
		count = *body.Count
	}
	out, err := s.Toolkit.Generate(r.Context(), g, count, body.Seed)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"strings": out})
}

// AutomatonToGrammar handles the POST /convert/grammar request.
func (s *Server) AutomatonToGrammar(w http.ResponseWriter, r *http.Request) {
	a, ok := s.decodeAutomaton(w, r)
	if !ok {
		return
	}
	g, err := s.Toolkit.ToGrammar(r.Context(), a)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.FromGrammar("", g).Grammar)
}

// GrammarToAutomaton handles the POST /convert/automaton request.
func (s *Server) GrammarToAutomaton(w http.ResponseWriter, r *http.Request) {
	g, ok := s.decodeGrammar(w, r)
	if !ok {
		return
	}
	a, err := s.Toolkit.ToAutomaton(r.Context(), g)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.FromAutomaton("", a).Automaton)
}

// ListDefinitions handles the GET /definitions request.
func (s *Server) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	names, err := s.Toolkit.Store().List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"names": names})
}

// GetDefinition handles the GET /definitions/{name} request.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	name, ok := bindName(w, r)
	if !ok {
		return
	}
	def, err := s.Toolkit.Store().Load(r.Context(), name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// PutDefinition handles the PUT /definitions/{name} request.
// The name in the path wins; a conflicting name in the body is rejected.
func (s *Server) PutDefinition(w http.ResponseWriter, r *http.Request) {
	name, ok := bindName(w, r)
	if !ok {
		return
	}

	raw := make(map[string]any)
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if bodyName, ok := raw["name"].(string); ok && bodyName != "" && bodyName != name {
		writeError(w, http.StatusBadRequest, fmt.Errorf("body name %q does not match path name %q", bodyName, name))
		return
	}
	raw["name"] = name

	def, err := schema.FromMap(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.checkModel(def); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.Toolkit.Store().Save(r.Context(), def); err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.InfoContext(r.Context(), "definition stored", "name", name, "kind", def.Kind)
	writeJSON(w, http.StatusOK, def)
}

// DeleteDefinition handles the DELETE /definitions/{name} request.
func (s *Server) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	name, ok := bindName(w, r)
	if !ok {
		return
	}
	if err := s.Toolkit.Store().Delete(r.Context(), name); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkModel builds the model of a definition so that only usable
// definitions are stored.
func (s *Server) checkModel(def *schema.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	var err error
	switch def.Kind {
	case schema.KindAutomaton:
		_, err = def.BuildAutomaton()
	case schema.KindGrammar:
		_, err = def.BuildGrammar()
	}
	return err
}

func bindName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var name string
	err := runtime.BindStyledParameterWithOptions("simple", "name", chi.URLParam(r, "name"), &name, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter name: %w", err))
		return "", false
	}
	return name, true
}

func (s *Server) decodeAutomaton(w http.ResponseWriter, r *http.Request) (*domain.Automaton, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}
	a, err := buildAutomaton(body)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return a, true
}

func (s *Server) decodeGrammar(w http.ResponseWriter, r *http.Request) (*domain.Grammar, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}
	g, err := buildGrammar(body)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return g, true
}

// buildAutomaton and buildGrammar route bare payloads through the same
// decoding as definition documents.
func buildAutomaton(payload map[string]any) (*domain.Automaton, error) {
	def, err := schema.FromMap(map[string]any{
		"kind":      string(schema.KindAutomaton),
		"name":      "request",
		"automaton": payload,
	})
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def.BuildAutomaton()
}

func buildGrammar(payload map[string]any) (*domain.Grammar, error) {
	def, err := schema.FromMap(map[string]any{
		"kind":    string(schema.KindGrammar),
		"name":    "request",
		"grammar": payload,
	})
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def.BuildGrammar()
}
