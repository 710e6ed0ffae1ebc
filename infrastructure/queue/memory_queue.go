// Package queue provides the in-memory FIFO of pending webhook jobs.
package queue

import (
	"sync"

	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// MemoryQueue is an unbounded FIFO guarded by a mutex. Jobs do not survive a restart.
type MemoryQueue struct {
	mu   sync.Mutex
	jobs []entities.Job
}

var _ interfaces.JobQueue = (*MemoryQueue)(nil)

// NewMemoryQueue creates an empty queue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

// Enqueue appends job to the tail.
func (q *MemoryQueue) Enqueue(job entities.Job) {
	q.mu.Lock()
	q.jobs = append(q.jobs, job)
	q.mu.Unlock()
}

// Dequeue removes and returns the head job.
func (q *MemoryQueue) Dequeue() (entities.Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.jobs) == 0 {
		return entities.Job{}, false
	}

	job := q.jobs[0]
	q.jobs[0] = entities.Job{}
	q.jobs = q.jobs[1:]
	if len(q.jobs) == 0 {
		q.jobs = nil
	}

	return job, true
}

// IsEmpty reports whether no jobs are pending.
func (q *MemoryQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of pending jobs.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
