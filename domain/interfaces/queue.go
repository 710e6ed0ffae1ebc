package interfaces

import "github.com/ngmachado/web3-hooks/domain/entities"

// JobEnqueuer is the only view of the queue the webhook intake holds.
type JobEnqueuer interface {
	Enqueue(job entities.Job)
}

// JobQueue is the FIFO of pending jobs owned by the drain loop.
type JobQueue interface {
	JobEnqueuer

	// Dequeue removes and returns the head job; ok is false when empty.
	Dequeue() (job entities.Job, ok bool)

	// IsEmpty reports whether no jobs are pending.
	IsEmpty() bool

	// Len returns the number of pending jobs.
	Len() int
}
