// Package validate decides whether a write payload is acceptable for an
// entity kind and operation. Shape rules come from a declarative Table;
// reference existence is delegated to a Resolver.
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// Resolver reports whether a referenced document exists.
type Resolver interface {
	Exists(ctx context.Context, kind domain.Kind, id int64) (bool, error)
}

// Validator applies a schema Table to payloads.
type Validator struct {
	table    Table
	resolver Resolver
}

// New creates a Validator. resolver may be nil, in which case Validate only
// checks shape.
func New(table Table, resolver Resolver) *Validator {
	return &Validator{table: table, resolver: resolver}
}

// Check validates shape only and performs no I/O. It returns a
// *domain.ValidationError describing every failing attribute.
func (v *Validator) Check(kind domain.Kind, op Op, p Payload) error {
	fields, ok := v.table.Fields(kind, op)
	if !ok {
		return fmt.Errorf("no schema for %s %s: %w", op, kind, domain.ErrValidation)
	}

	if len(p) == 0 {
		return domain.NewValidationError("body", "must contain at least one attribute")
	}

	if op != OpPatch {
		if len(p) != len(fields) {
			return domain.NewValidationError("body",
				fmt.Sprintf("must contain exactly %d attributes, got %d", len(fields), len(p)))
		}
	}

	known := make(map[string]struct{}, len(fields))
	problems := make(map[string]string)
	for _, f := range fields {
		known[f.Name] = struct{}{}
		val, present := p[f.Name]
		if !present {
			if f.Required {
				problems[f.Name] = "is required"
			}
			continue
		}
		if err := f.Check(val); err != nil {
			problems[f.Name] = err.Error()
		}
	}
	for name := range p {
		if _, ok := known[name]; !ok {
			problems[name] = "is not a recognized attribute"
		}
	}

	if kind == domain.KindProject && problems["start_date"] == "" && problems["end_date"] == "" {
		start, hasStart := p["start_date"].(string)
		end, hasEnd := p["end_date"].(string)
		if hasStart && hasEnd {
			if err := DateOrder(start, end); err != nil {
				problems["end_date"] = err.Error()
			}
		}
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Fields: problems}
	}
	return nil
}

// Validate checks shape and then confirms that every referenced id resolves
// to a live document. A missing target fails with domain.ErrReferenceNotFound.
func (v *Validator) Validate(ctx context.Context, kind domain.Kind, op Op, p Payload) error {
	if err := v.Check(kind, op, p); err != nil {
		return err
	}
	if v.resolver == nil {
		return nil
	}

	fields, _ := v.table.Fields(kind, op)
	for _, f := range fields {
		if f.Target == "" {
			continue
		}
		val, present := p[f.Name]
		if !present {
			continue
		}
		for _, id := range ReferencedIDs(val) {
			ok, err := v.resolver.Exists(ctx, f.Target, id)
			if err != nil {
				return fmt.Errorf("resolving %s %d: %w", f.Target, id, err)
			}
			if !ok {
				return &ReferenceError{Field: f.Name, Kind: f.Target, ID: id}
			}
		}
	}
	return nil
}

// ReferenceError reports a reference attribute naming a document that does
// not exist. It matches domain.ErrReferenceNotFound.
type ReferenceError struct {
	Field string
	Kind  domain.Kind
	ID    int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %d: %s", e.Field, e.Kind, e.ID, domain.ErrReferenceNotFound.Error())
}

func (e *ReferenceError) Unwrap() error {
	return domain.ErrReferenceNotFound
}

// IsInvalid reports whether err is a shape failure rather than a reference or
// store failure.
func IsInvalid(err error) bool {
	var verr *domain.ValidationError
	return errors.As(err, &verr)
}
