package idgen_test

import (
	"sync"
	"testing"

	"smart-parking/internal/pkg/idgen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUIDGenerator()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := gen.NewID()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := idgen.NewSequenceGenerator("res")
	assert.Equal(t, "res-0001", gen.NewID())
	assert.Equal(t, "res-0002", gen.NewID())

	t.Run("unique under concurrency", func(t *testing.T) {
		gen := idgen.NewSequenceGenerator("c")
		var (
			mu   sync.Mutex
			wg   sync.WaitGroup
			seen = map[string]struct{}{}
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id := gen.NewID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 50)
	})
}

func TestFixedGenerator(t *testing.T) {
	gen := idgen.FixedGenerator("same")
	assert.Equal(t, gen.NewID(), gen.NewID())
}
