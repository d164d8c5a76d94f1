package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/adapters/http/middleware"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/logging"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(param, "must be a positive integer")
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodePayload reads the body as one JSON object. On failure it writes the
// error response and returns false.
func decodePayload(w http.ResponseWriter, r *http.Request) (validate.Payload, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "must not exceed 1 MB"))
		} else {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "could not be read"))
		}
		return nil, false
	}

	p, err := validate.ParsePayload(data)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, false
	}
	return p, true
}

// caller returns the authenticated identity. Routes reaching it without one
// were mounted outside the auth group, which is answered as 401.
func caller(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
	}
	return id, ok
}

// parsePage reads ?limit and ?offset, writing a 400 on bad input.
func parsePage(w http.ResponseWriter, r *http.Request, cfg config.PaginationConfig) (domain.Page, bool) {
	page, err := dto.ParsePage(r.URL.Query(), cfg)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return domain.Page{}, false
	}
	return page, true
}

// writeCreated answers a PUT or POST with 201, the body and a Location header
// pointing at self.
func writeCreated(w http.ResponseWriter, r *http.Request, self string, v any) {
	w.Header().Set("Location", self)
	writeJSON(w, r, http.StatusCreated, v)
}
