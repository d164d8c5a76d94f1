// Package storetest holds the behavior every ports.DocumentStore must share.
// Adapter tests call Run with a constructor for a fresh, empty store.
package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// Run exercises store against the DocumentStore contract, and the Transactor
// contract when store implements it.
func Run(t *testing.T, newStore func(t *testing.T) ports.DocumentStore) {
	t.Helper()

	t.Run("put allocates ids per kind", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a := put(t, s, domain.KindClient, 0, `{"name":"Acme"}`)
		b := put(t, s, domain.KindClient, 0, `{"name":"Globex"}`)
		p := put(t, s, domain.KindProject, 0, `{"name":"Apollo"}`)

		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(2), b.ID)
		assert.Equal(t, int64(1), p.ID)

		got, err := s.Get(ctx, domain.KindClient, 2)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Globex"}`, string(got.Body))
	})

	t.Run("put with id replaces body", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		doc := put(t, s, domain.KindTeamMember, 0, `{"name":"Ada"}`)
		put(t, s, domain.KindTeamMember, doc.ID, `{"name":"Grace"}`)

		got, err := s.Get(ctx, domain.KindTeamMember, doc.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Grace"}`, string(got.Body))

		next := put(t, s, domain.KindTeamMember, 0, `{"name":"Linus"}`)
		assert.Equal(t, doc.ID+1, next.ID)
	})

	t.Run("get and delete missing", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Get(ctx, domain.KindProject, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)

		err = s.Delete(ctx, domain.KindProject, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes document", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		doc := put(t, s, domain.KindUser, 0, `{"sub":"a"}`)
		require.NoError(t, s.Delete(ctx, domain.KindUser, doc.ID))

		_, err := s.Get(ctx, domain.KindUser, doc.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("query filters and pages", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, body := range []string{
			`{"project_owner":"alice","budget":10}`,
			`{"project_owner":"bob","budget":20}`,
			`{"project_owner":"alice","budget":30}`,
			`{"project_owner":"alice","budget":40}`,
		} {
			put(t, s, domain.KindProject, 0, body)
		}

		owned := []domain.Filter{{Field: "project_owner", Value: "alice"}}
		first, err := s.Query(ctx, domain.KindProject, owned, domain.Page{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, ids(first))
		assert.True(t, first.More)

		second, err := s.Query(ctx, domain.KindProject, owned, domain.Page{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, []int64{4}, ids(second))
		assert.False(t, second.More)

		all, err := s.Query(ctx, domain.KindProject, nil, domain.Page{})
		require.NoError(t, err)
		assert.Len(t, all.Documents, 4)
		assert.False(t, all.More)

		none, err := s.Query(ctx, domain.KindClient, nil, domain.Page{Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, none.Documents)
	})

	t.Run("query matches booleans and numbers", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		put(t, s, domain.KindUser, 0, `{"sub":"a","admin":true}`)
		put(t, s, domain.KindUser, 0, `{"sub":"b","admin":false}`)
		put(t, s, domain.KindUser, 0, `{"sub":"c","admin":true}`)

		admins, err := s.Query(ctx, domain.KindUser, []domain.Filter{{Field: "admin", Value: true}}, domain.Page{})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, ids(admins))
	})

	if _, ok := newStore(t).(ports.Transactor); !ok {
		return
	}

	t.Run("transaction commits", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		err := s.(ports.Transactor).InTx(ctx, func(ctx context.Context, tx ports.DocumentStore) error {
			doc, err := tx.Put(ctx, domain.Document{Kind: domain.KindProject, Body: json.RawMessage(`{"name":"Apollo"}`)})
			if err != nil {
				return err
			}
			_, err = tx.Get(ctx, domain.KindProject, doc.ID)
			return err
		})
		require.NoError(t, err)

		_, err = s.Get(ctx, domain.KindProject, 1)
		require.NoError(t, err)
	})

	t.Run("transaction rolls back", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		existing := put(t, s, domain.KindClient, 0, `{"name":"Acme"}`)
		boom := errors.New("boom")

		err := s.(ports.Transactor).InTx(ctx, func(ctx context.Context, tx ports.DocumentStore) error {
			if _, err := tx.Put(ctx, domain.Document{Kind: domain.KindClient, ID: existing.ID,
				Body: json.RawMessage(`{"name":"Changed"}`)}); err != nil {
				return err
			}
			if _, err := tx.Put(ctx, domain.Document{Kind: domain.KindClient,
				Body: json.RawMessage(`{"name":"New"}`)}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := s.Get(ctx, domain.KindClient, existing.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Acme"}`, string(got.Body))

		_, err = s.Get(ctx, domain.KindClient, existing.ID+1)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func put(t *testing.T, s ports.DocumentStore, kind domain.Kind, id int64, body string) domain.Document {
	t.Helper()
	doc, err := s.Put(context.Background(), domain.Document{Kind: kind, ID: id, Body: json.RawMessage(body)})
	require.NoError(t, err)
	return doc
}

func ids(res domain.PageResult) []int64 {
	out := make([]int64, 0, len(res.Documents))
	for _, d := range res.Documents {
		out = append(out, d.ID)
	}
	return out
}
