package middleware

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
)

const mediaJSON = "application/json"

// Negotiate returns middleware that enforces JSON on both directions. A
// request whose Accept header excludes application/json gets 406. A request
// carrying a body that is not application/json gets 415. Bodiless writes
// such as attach and POST /admin pass without a Content-Type.
func Negotiate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !acceptsJSON(r.Header.Values("Accept")) {
				dto.WriteErrorResponse(w, r, dto.ErrNotAcceptable)
				return
			}
			if r.ContentLength != 0 && !isJSON(r.Header.Get("Content-Type")) {
				dto.WriteErrorResponse(w, r, dto.ErrUnsupportedMediaType)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// acceptsJSON reports whether any Accept range covers application/json with
// a non-zero quality. No Accept header accepts everything.
func acceptsJSON(values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if q, err := strconv.ParseFloat(params["q"], 64); err == nil && q == 0 {
				continue
			}
			switch mt {
			case mediaJSON, "application/*", "*/*":
				return true
			}
		}
	}
	return false
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == mediaJSON
}
