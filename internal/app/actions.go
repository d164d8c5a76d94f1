package app

import (
	"context"
	"fmt"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// Compile-time checks that the store actions implement domain.Action.
var (
	_ domain.Action = (*putAction)(nil)
	_ domain.Action = (*deleteAction)(nil)
)

// putAction writes one document. When compensate is set, Rollback restores
// prev, the body the document had when the plan was built.
type putAction struct {
	store      ports.DocumentStore
	doc        domain.Document
	prev       domain.Document
	compensate bool
}

func (a *putAction) Execute(ctx context.Context) error {
	if _, err := a.store.Put(ctx, a.doc); err != nil {
		return fmt.Errorf("writing %s %d: %w", a.doc.Kind, a.doc.ID, err)
	}
	return nil
}

func (a *putAction) Rollback(ctx context.Context) error {
	if !a.compensate {
		return nil
	}
	if _, err := a.store.Put(ctx, a.prev); err != nil {
		return fmt.Errorf("restoring %s %d: %w", a.prev.Kind, a.prev.ID, err)
	}
	return nil
}

func (a *putAction) Description() string {
	return fmt.Sprintf("put %s %d", a.doc.Kind, a.doc.ID)
}

// deleteAction removes one document. Rollback writes prev back under the
// same id.
type deleteAction struct {
	store      ports.DocumentStore
	prev       domain.Document
	compensate bool
}

func (a *deleteAction) Execute(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.prev.Kind, a.prev.ID); err != nil {
		return fmt.Errorf("deleting %s %d: %w", a.prev.Kind, a.prev.ID, err)
	}
	return nil
}

func (a *deleteAction) Rollback(ctx context.Context) error {
	if !a.compensate {
		return nil
	}
	if _, err := a.store.Put(ctx, a.prev); err != nil {
		return fmt.Errorf("restoring deleted %s %d: %w", a.prev.Kind, a.prev.ID, err)
	}
	return nil
}

func (a *deleteAction) Description() string {
	return fmt.Sprintf("delete %s %d", a.prev.Kind, a.prev.ID)
}
