package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists credential-bearing header names, lowercased. The
// HTTP middleware consults it before logging request headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// secretFields are attribute keys whose values are always masked.
var secretFields = []string{"password", "secret", "token", "dsn", "hmac_secret"}

// secretPrefixes catch variants such as secret_key or api_key_v2.
var secretPrefixes = []string{"secret_", "api_key"}

// secretValues are masked wherever they appear, whatever the key.
var secretValues = []*regexp.Regexp{
	// Bearer credentials.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// Compact JWTs. Ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Passwords inside URL-style DSNs, e.g. postgres://app:pw@db/portfolio.
	regexp.MustCompile(`[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`),
	// Inline api_key=... pairs.
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(secretFields)+len(secretPrefixes)+len(secretValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range secretPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range secretValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
