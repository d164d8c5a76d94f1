package appctx_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	appctx "github.com/dankimjw/portfolio-api/internal/app/context"
)

type totals struct {
	Projects int
	Edges    int
}

func TestSafeRef_Update(t *testing.T) {
	t.Parallel()
	ref := appctx.NewRef(totals{Projects: 2})

	ref.Update(func(v *totals) { v.Edges += 3 })

	assert.Equal(t, totals{Projects: 2, Edges: 3}, ref.Get())
}

func TestSafeRef_GetReturnsCopy(t *testing.T) {
	t.Parallel()
	ref := appctx.NewRef(totals{})

	snapshot := ref.Get()
	snapshot.Edges = 99

	assert.Zero(t, ref.Get().Edges)
}

func TestSafeRef_ConcurrentUpdates(t *testing.T) {
	t.Parallel()
	ref := appctx.NewRef(totals{})

	const workers, perWorker = 16, 250
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				ref.Update(func(v *totals) { v.Edges++ })
				_ = ref.Get()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, ref.Get().Edges)
}
