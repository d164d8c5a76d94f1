package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dankimjw/portfolio-api/internal/platform/health"
	"github.com/dankimjw/portfolio-api/mocks"
)

type probe struct {
	name string
	fn   func(ctx context.Context) error
}

func (p probe) Name() string                          { return p.name }
func (p probe) HealthCheck(ctx context.Context) error { return p.fn(ctx) }

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		make func(t *testing.T) []*mocks.MockHealthChecker
		want map[string]error
	}{
		{
			name: "nothing registered",
			make: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want: map[string]error{},
		},
		{
			name: "all healthy",
			make: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "document-store", nil), checker(t, "jwks", nil)}
			},
			want: map[string]error{"document-store": nil, "jwks": nil},
		},
		{
			name: "one failing",
			make: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "document-store", nil), checker(t, "jwks", refused)}
			},
			want: map[string]error{"document-store": nil, "jwks": refused},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := health.New()
			for _, c := range tt.make(t) {
				r.Register(c)
			}
			assert.Equal(t, tt.want, r.CheckAll(context.Background()))
		})
	}
}

func TestRegistry_SameNameReplaces(t *testing.T) {
	t.Parallel()

	stale := mocks.NewMockHealthChecker(t)
	stale.EXPECT().Name().Return("document-store")
	down := errors.New("database is locked")

	r := health.New()
	r.Register(stale)
	r.Register(checker(t, "document-store", down))

	results := r.CheckAll(context.Background())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results["document-store"], down)
}

func TestRegistry_ChecksRunConcurrently(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	wg.Add(2)
	rendezvous := func(ctx context.Context) error {
		wg.Done()
		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New()
	r.Register(probe{name: "document-store", fn: rendezvous})
	r.Register(probe{name: "jwks", fn: rendezvous})

	assert.Equal(t, map[string]error{"document-store": nil, "jwks": nil}, r.CheckAll(context.Background()))
}

func TestRegistry_CheckSeesCallerDeadline(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(probe{name: "jwks", fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.CheckAll(ctx)["jwks"], context.DeadlineExceeded)
}

func TestRegistry_PanickingCheckFails(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(probe{name: "document-store", fn: func(context.Context) error { panic("nil pool") }})

	err := r.CheckAll(context.Background())["document-store"]
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil pool")
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()
	ok := func(context.Context) error { return nil }

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Register(probe{name: "document-store", fn: ok})
				return
			}
			for _, err := range r.CheckAll(context.Background()) {
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
