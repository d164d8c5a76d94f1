package ports

import (
	"context"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// DocumentStore is the raw document store client. It knows nothing about
// relationships: every call touches exactly one document or one collection.
type DocumentStore interface {
	// Get returns the document with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, kind domain.Kind, id int64) (domain.Document, error)

	// Put writes the document, replacing any existing body. A document with
	// ID 0 is assigned the next id for its kind. The stored document is
	// returned.
	Put(ctx context.Context, doc domain.Document) (domain.Document, error)

	// Delete removes the document with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, kind domain.Kind, id int64) error

	// Query returns documents of the kind whose top-level attributes equal
	// every filter, ordered by ascending id and windowed by page.
	Query(ctx context.Context, kind domain.Kind, filters []domain.Filter, page domain.Page) (domain.PageResult, error)
}

// Transactor is implemented by stores that can run several operations
// atomically. fn receives a DocumentStore bound to the transaction; the
// transaction commits if fn returns nil and rolls back otherwise.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx DocumentStore) error) error
}
