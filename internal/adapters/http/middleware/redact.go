package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dankimjw/portfolio-api/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers to log attributes sorted by name. Values of
// headers listed in logging.SensitiveHeaders are replaced; multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}
