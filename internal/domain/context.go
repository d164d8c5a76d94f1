package domain

import "context"

// Action is one write in a relationship plan, with a compensating Rollback.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback restores the document Execute replaced. It is only called
	// after a successful Execute, possibly with a different context.
	Rollback(ctx context.Context) error

	// Description names the write for logs, e.g. "put projects 12".
	Description() string
}
