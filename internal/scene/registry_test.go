package scene

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryConcurrentAppends(t *testing.T) {
	reg := NewRegistry()
	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Add(Fixture{Name: fmt.Sprintf("fixture-%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, reg.Len())
	seen := map[string]bool{}
	for _, f := range reg.Snapshot() {
		seen[f.Name] = true
	}
	assert.Len(t, seen, n)
}

func TestSnapshotIsACopy(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Fixture{Name: "a"})
	snap := reg.Snapshot()
	reg.Add(Fixture{Name: "b"})
	assert.Len(t, snap, 1)
	assert.Equal(t, 2, reg.Len())
}
