package queue

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueue_FIFO(t *testing.T) {
	q := NewMemoryQueue()
	assert.True(t, q.IsEmpty())

	_, ok := q.Dequeue()
	assert.False(t, ok)

	for _, token := range []string{"A", "B", "C"} {
		q.Enqueue(entities.Job{TokenAddress: token, EventType: entities.EventTypeUpgrade})
	}
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"A", "B", "C"} {
		job, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, job.TokenAddress)
	}

	assert.True(t, q.IsEmpty())
	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestMemoryQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewMemoryQueue()

	const producers = 16
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(entities.Job{TokenAddress: fmt.Sprintf("%d-%d", p, i), BlockNumber: uint64(i)})
			}
		}(p)
	}
	wg.Wait()

	require.Equal(t, producers*perProducer, q.Len())

	// Per-producer order must survive interleaving.
	last := make(map[string]int)
	for !q.IsEmpty() {
		job, ok := q.Dequeue()
		require.True(t, ok)
		var p, i int
		_, err := fmt.Sscanf(job.TokenAddress, "%d-%d", &p, &i)
		require.NoError(t, err)
		key := fmt.Sprint(p)
		if prev, seen := last[key]; seen {
			assert.Greater(t, i, prev)
		}
		last[key] = i
	}
	assert.Len(t, last, producers)
}
