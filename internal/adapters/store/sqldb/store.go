// Package sqldb implements ports.DocumentStore over database/sql. Documents
// live in one table keyed by (kind, id) with a JSON body; ids come from a
// per-kind sequence row. Engine differences are isolated in a Dialect.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

var (
	_ ports.DocumentStore = (*Store)(nil)
	_ ports.Transactor    = (*Store)(nil)
)

// Filter fields are interpolated into SQL, so only plain attribute names pass.
var fieldPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// querier is the subset of *sql.DB and *sql.Tx the store needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a document store over a *sql.DB, or over a *sql.Tx inside InTx.
type Store struct {
	db      *sql.DB
	q       querier
	inTx    bool
	dialect Dialect
}

// New wraps db and applies the dialect's schema.
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	for _, stmt := range dialect.Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("apply %s schema: %w", dialect.Name, err)
		}
	}
	return &Store{db: db, q: db, dialect: dialect}, nil
}

// DB exposes the underlying pool for shutdown and tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying pool.
func (s *Store) Close() error { return s.db.Close() }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "document-store" }

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", s.dialect.Name, err)
	}
	return nil
}

func (s *Store) ph(n int) string { return s.dialect.Placeholder(n) }

// Get implements ports.DocumentStore.
func (s *Store) Get(ctx context.Context, kind domain.Kind, id int64) (domain.Document, error) {
	query := fmt.Sprintf(`SELECT body FROM documents WHERE kind = %s AND id = %s`, s.ph(1), s.ph(2))

	var body string
	err := s.q.QueryRowContext(ctx, query, string(kind), id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("select %s %d: %w", kind, id, err)
	}
	return domain.Document{Kind: kind, ID: id, Body: []byte(body)}, nil
}

// Put implements ports.DocumentStore. Allocating an id and writing the row
// happen in one transaction.
func (s *Store) Put(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if !doc.Kind.IsValid() {
		return domain.Document{}, fmt.Errorf("unknown kind %q", doc.Kind)
	}
	err := s.atomically(ctx, func(ctx context.Context, q querier) error {
		if doc.ID == 0 {
			id, err := s.nextID(ctx, q, doc.Kind)
			if err != nil {
				return err
			}
			doc.ID = id
		} else if err := s.bumpSequence(ctx, q, doc.Kind, doc.ID); err != nil {
			return err
		}

		upsert := fmt.Sprintf(`INSERT INTO documents (kind, id, body) VALUES (%s, %s, %s)
			ON CONFLICT (kind, id) DO UPDATE SET body = excluded.body`, s.ph(1), s.ph(2), s.ph(3))
		if _, err := q.ExecContext(ctx, upsert, string(doc.Kind), doc.ID, string(doc.Body)); err != nil {
			return fmt.Errorf("upsert %s %d: %w", doc.Kind, doc.ID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func (s *Store) nextID(ctx context.Context, q querier, kind domain.Kind) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO sequences (kind, next_id) VALUES (%s, 1)
		ON CONFLICT (kind) DO UPDATE SET next_id = sequences.next_id + 1
		RETURNING next_id`, s.ph(1))

	var id int64
	if err := q.QueryRowContext(ctx, query, string(kind)).Scan(&id); err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", kind, err)
	}
	return id, nil
}

// bumpSequence keeps the sequence ahead of explicitly written ids.
func (s *Store) bumpSequence(ctx context.Context, q querier, kind domain.Kind, id int64) error {
	query := fmt.Sprintf(`INSERT INTO sequences (kind, next_id) VALUES (%s, %s)
		ON CONFLICT (kind) DO UPDATE SET next_id = CASE
			WHEN sequences.next_id < excluded.next_id THEN excluded.next_id
			ELSE sequences.next_id END`, s.ph(1), s.ph(2))
	if _, err := q.ExecContext(ctx, query, string(kind), id); err != nil {
		return fmt.Errorf("advance %s sequence: %w", kind, err)
	}
	return nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	query := fmt.Sprintf(`DELETE FROM documents WHERE kind = %s AND id = %s`, s.ph(1), s.ph(2))
	res, err := s.q.ExecContext(ctx, query, string(kind), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

// Query implements ports.DocumentStore. One extra row is fetched to decide
// whether another page exists.
func (s *Store) Query(ctx context.Context, kind domain.Kind, filters []domain.Filter, page domain.Page) (domain.PageResult, error) {
	var b strings.Builder
	args := []any{string(kind)}
	fmt.Fprintf(&b, `SELECT id, body FROM documents WHERE kind = %s`, s.ph(1))

	for _, f := range filters {
		if !fieldPattern.MatchString(f.Field) {
			return domain.PageResult{}, fmt.Errorf("invalid filter field %q", f.Field)
		}
		arg, err := s.dialect.FilterArg(f.Value)
		if err != nil {
			return domain.PageResult{}, fmt.Errorf("encoding filter %s: %w", f.Field, err)
		}
		args = append(args, arg)
		fmt.Fprintf(&b, ` AND %s`, s.dialect.FieldEquals(f.Field, len(args)))
	}

	limit := int64(math.MaxInt32)
	if page.Limit > 0 {
		limit = int64(page.Limit) + 1
	}
	offset := int64(max(page.Offset, 0))
	args = append(args, limit, offset)
	fmt.Fprintf(&b, ` ORDER BY id LIMIT %s OFFSET %s`, s.ph(len(args)-1), s.ph(len(args)))

	rows, err := s.q.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("query %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	var docs []domain.Document
	for rows.Next() {
		var (
			id   int64
			body string
		)
		if err := rows.Scan(&id, &body); err != nil {
			return domain.PageResult{}, fmt.Errorf("scan %s: %w", kind, err)
		}
		docs = append(docs, domain.Document{Kind: kind, ID: id, Body: []byte(body)})
	}
	if err := rows.Err(); err != nil {
		return domain.PageResult{}, fmt.Errorf("iterate %s: %w", kind, err)
	}

	more := false
	if page.Limit > 0 && len(docs) > page.Limit {
		docs = docs[:page.Limit]
		more = true
	}
	return domain.PageResult{Documents: docs, More: more}, nil
}

// InTx implements ports.Transactor. A store that is already inside a
// transaction runs fn in that transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.DocumentStore) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, &Store{db: s.db, q: tx, inTx: true, dialect: s.dialect}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// atomically runs fn in the current transaction, or in a new one.
func (s *Store) atomically(ctx context.Context, fn func(ctx context.Context, q querier) error) error {
	if s.inTx {
		return fn(ctx, s.q)
	}
	return s.InTx(ctx, func(ctx context.Context, tx ports.DocumentStore) error {
		inner, ok := tx.(*Store)
		if !ok {
			return errors.New("unexpected transaction store type")
		}
		return fn(ctx, inner.q)
	})
}
