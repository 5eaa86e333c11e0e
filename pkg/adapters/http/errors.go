package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/chomsky/pkg/domain"
	"github.com/aretw0/chomsky/pkg/persistence/middleware"
	"github.com/aretw0/chomsky/pkg/schema"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Issues []string `json:"issues,omitempty"`
}

// statusFor maps domain errors to HTTP statuses: malformed input is 400,
// a missing definition 404, a read-only store 403 and a well-formed request the algorithms refuse 422.
func statusFor(err error) int {
	var aggr *schema.AggregateError
	switch {
	case errors.Is(err, domain.ErrDefinitionNotFound):
		return http.StatusNotFound
	case errors.Is(err, middleware.ErrReadOnly):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidAutomaton),
		errors.Is(err, domain.ErrInvalidGrammar),
		errors.Is(err, schema.ErrMalformedDefinition),
		errors.As(err, &aggr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedProductionShape),
		errors.Is(err, domain.ErrStateExplosion),
		errors.Is(err, domain.ErrGenerationLimit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var invalidAutomaton *domain.InvalidAutomatonError
	var invalidGrammar *domain.InvalidGrammarError
	switch {
	case errors.As(err, &invalidAutomaton):
		resp.Issues = issueStrings(invalidAutomaton.Issues)
	case errors.As(err, &invalidGrammar):
		resp.Issues = issueStrings(invalidGrammar.Issues)
	default:
		for _, e := range schema.ValidationErrors(err) {
			resp.Issues = append(resp.Issues, e.Error())
		}
	}
	writeJSON(w, status, resp)
}

func issueStrings(issues []domain.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.String()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
