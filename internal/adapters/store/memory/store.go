// Package memory provides an in-process document store. It backs the local
// profile and serves as the fake store in service and coordinator tests.
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

var (
	_ ports.DocumentStore = (*Store)(nil)
	_ ports.Transactor    = (*Store)(nil)
)

// Store keeps documents in maps guarded by a mutex. Transactions work on a
// copy of the state and swap it in on success.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New returns an empty store.
func New() *Store {
	return &Store{st: newState()}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "document-store" }

// HealthCheck implements ports.HealthChecker. The memory store is always
// available.
func (s *Store) HealthCheck(_ context.Context) error { return nil }

// Get implements ports.DocumentStore.
func (s *Store) Get(ctx context.Context, kind domain.Kind, id int64) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.get(kind, id)
}

// Put implements ports.DocumentStore.
func (s *Store) Put(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.put(doc)
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.delete(kind, id)
}

// Query implements ports.DocumentStore.
func (s *Store) Query(ctx context.Context, kind domain.Kind, filters []domain.Filter, page domain.Page) (domain.PageResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PageResult{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.query(kind, filters, page)
}

// InTx implements ports.Transactor. Writers are excluded for the duration of
// fn; fn's writes become visible only if it returns nil.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.DocumentStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &txStore{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// txStore is the view handed to a transaction. It works on a private copy
// of the state; mu serializes the transaction's own concurrent writers.
type txStore struct {
	mu sync.Mutex
	st *state
}

func (t *txStore) Get(_ context.Context, kind domain.Kind, id int64) (domain.Document, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.get(kind, id)
}

func (t *txStore) Put(_ context.Context, doc domain.Document) (domain.Document, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.put(doc)
}

func (t *txStore) Delete(_ context.Context, kind domain.Kind, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.delete(kind, id)
}

func (t *txStore) Query(_ context.Context, kind domain.Kind, filters []domain.Filter, page domain.Page) (domain.PageResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.query(kind, filters, page)
}

type state struct {
	docs map[domain.Kind]map[int64][]byte
	next map[domain.Kind]int64
}

func newState() *state {
	return &state{
		docs: make(map[domain.Kind]map[int64][]byte),
		next: make(map[domain.Kind]int64),
	}
}

// clone copies the maps. Bodies are never mutated in place, so they are shared.
func (s *state) clone() *state {
	c := newState()
	for kind, docs := range s.docs {
		c.docs[kind] = maps.Clone(docs)
	}
	maps.Copy(c.next, s.next)
	return c
}

func (s *state) get(kind domain.Kind, id int64) (domain.Document, error) {
	body, ok := s.docs[kind][id]
	if !ok {
		return domain.Document{}, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return domain.Document{Kind: kind, ID: id, Body: slices.Clone(body)}, nil
}

func (s *state) put(doc domain.Document) (domain.Document, error) {
	if !doc.Kind.IsValid() {
		return domain.Document{}, fmt.Errorf("unknown kind %q", doc.Kind)
	}
	if !json.Valid(doc.Body) {
		return domain.Document{}, fmt.Errorf("%s %d: body is not valid JSON", doc.Kind, doc.ID)
	}
	if doc.ID == 0 {
		s.next[doc.Kind]++
		doc.ID = s.next[doc.Kind]
	} else if doc.ID > s.next[doc.Kind] {
		s.next[doc.Kind] = doc.ID
	}
	if s.docs[doc.Kind] == nil {
		s.docs[doc.Kind] = make(map[int64][]byte)
	}
	body := slices.Clone(doc.Body)
	s.docs[doc.Kind][doc.ID] = body
	return domain.Document{Kind: doc.Kind, ID: doc.ID, Body: slices.Clone(body)}, nil
}

func (s *state) delete(kind domain.Kind, id int64) error {
	if _, ok := s.docs[kind][id]; !ok {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	delete(s.docs[kind], id)
	return nil
}

func (s *state) query(kind domain.Kind, filters []domain.Filter, page domain.Page) (domain.PageResult, error) {
	wants := make([][]byte, len(filters))
	for i, f := range filters {
		b, err := json.Marshal(f.Value)
		if err != nil {
			return domain.PageResult{}, fmt.Errorf("encoding filter %s: %w", f.Field, err)
		}
		wants[i] = b
	}

	ids := slices.Sorted(maps.Keys(s.docs[kind]))
	var matched []domain.Document
	for _, id := range ids {
		body := s.docs[kind][id]
		ok, err := matches(body, filters, wants)
		if err != nil {
			return domain.PageResult{}, fmt.Errorf("%s %d: %w", kind, id, err)
		}
		if ok {
			matched = append(matched, domain.Document{Kind: kind, ID: id, Body: slices.Clone(body)})
		}
	}

	start := min(max(page.Offset, 0), len(matched))
	end := len(matched)
	if page.Limit > 0 {
		end = min(start+page.Limit, len(matched))
	}
	return domain.PageResult{
		Documents: matched[start:end],
		More:      end < len(matched),
	}, nil
}

// matches compares each filtered attribute by its compacted JSON encoding.
func matches(body []byte, filters []domain.Filter, wants [][]byte) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(body, &attrs); err != nil {
		return false, fmt.Errorf("decoding body: %w", err)
	}
	for i, f := range filters {
		raw, ok := attrs[f.Field]
		if !ok {
			return false, nil
		}
		var got bytes.Buffer
		if err := json.Compact(&got, raw); err != nil {
			return false, fmt.Errorf("compacting %s: %w", f.Field, err)
		}
		if !bytes.Equal(got.Bytes(), wants[i]) {
			return false, nil
		}
	}
	return true, nil
}
