package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// Failures raised by the router and middleware before a handler runs.
var (
	ErrNotAcceptable        = errors.New("response media type must allow application/json")
	ErrUnsupportedMediaType = errors.New("request body must be application/json")
	ErrMethodNotAllowed     = errors.New("method not allowed on this resource")
)

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []ProblemField `json:"errors,omitempty"`
}

// ProblemField points at one rejected request field, e.g. body.budget.
type ProblemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor is checked in order; the first match wins, so narrower errors
// go before the sentinels they wrap.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{ErrNotAcceptable, http.StatusNotAcceptable},
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusOf maps err to its HTTP status, 500 when nothing matches.
func StatusOf(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem for err. Unmapped errors keep their
// text out of the body; it belongs in the logs.
func NewErrorResponse(r *http.Request, err error) Problem {
	status := StatusOf(err)
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		p.Detail = ""
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = fieldsOf(verr)
	}
	return p
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	p := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response", slog.Any("error", encErr))
	}
}

func fieldsOf(verr *domain.ValidationError) []ProblemField {
	out := make([]ProblemField, 0, len(verr.Fields))
	for name, msg := range verr.Fields {
		out = append(out, ProblemField{Location: "body." + name, Message: msg})
	}
	slices.SortFunc(out, func(a, b ProblemField) int { return strings.Compare(a.Location, b.Location) })
	return out
}
