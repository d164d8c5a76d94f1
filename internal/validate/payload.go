package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// Payload is a decoded JSON object. Numbers are kept as json.Number so that
// integer and fractional inputs can be told apart.
type Payload map[string]any

// Decode reads one JSON object from r.
func Decode(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, domain.NewValidationError("body", "must be a JSON object")
	}
	if p == nil {
		return nil, domain.NewValidationError("body", "must be a JSON object")
	}
	if dec.More() {
		return nil, domain.NewValidationError("body", "must contain a single JSON object")
	}
	return p, nil
}

// ParsePayload decodes a JSON object held in memory.
func ParsePayload(data []byte) (Payload, error) {
	return Decode(bytes.NewReader(data))
}

// Has reports whether the payload carries the attribute.
func (p Payload) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Apply copies the payload's attributes onto dst, a pointer to an entity.
// Attributes absent from the payload keep their current value. Reference ids
// submitted as decimal strings are converted to integers first.
func Apply(dst domain.Entity, p Payload) error {
	norm := make(map[string]any, len(p))
	for k, v := range p {
		norm[k] = normalize(v)
	}
	data, err := json.Marshal(norm)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.NewValidationError(typeErr.Field, "has the wrong type")
		}
		return fmt.Errorf("applying payload to %s: %w", dst.Kind(), err)
	}
	return nil
}

// normalize rewrites the id inside reference objects, recursively, so that
// "12" and 12 decode the same way.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			if k == "id" {
				if id, ok := CoerceID(inner); ok {
					out[k] = id
					continue
				}
			}
			out[k] = normalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = normalize(inner)
		}
		return out
	default:
		return v
	}
}

// ReferencedIDs returns the ids named by a reference attribute value: none for
// null, one for an object, one per element for an array.
func ReferencedIDs(v any) []int64 {
	switch t := v.(type) {
	case map[string]any:
		if id, ok := CoerceID(t["id"]); ok {
			return []int64{id}
		}
	case []any:
		ids := make([]int64, 0, len(t))
		for _, item := range t {
			ids = append(ids, ReferencedIDs(item)...)
		}
		return ids
	}
	return nil
}
