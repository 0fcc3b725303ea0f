package batch

import "sync"

// JobFunc processes one job of a WorkerPool.
type JobFunc[T any, G any] func(job T) G

// WorkerPool runs a fixed number of workers over a job queue. Results arrive
// in completion order; callers needing input order carry an index in T and G.
//
// Usage: Start, then AddJob from a producer goroutine followed by Close, then
// Wait in its own goroutine while ranging over CollectResults.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// NewWorkerPool returns a pool of numWorkers workers (at least one) whose job
// and result channels buffer queueSize items.
func NewWorkerPool[T any, G any](numWorkers, queueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: max(numWorkers, 1),
		jobQueue:   make(chan T, max(queueSize, 0)),
		results:    make(chan G, max(queueSize, 0)),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

// Start launches the workers.
func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker has returned, then closes the result channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob enqueues a job; it blocks while the queue is full.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// CollectResults returns the result channel, closed by Wait.
func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}
