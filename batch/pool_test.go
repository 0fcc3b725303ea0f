package batch_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linstald/master-thesis-scripts/batch"
)

func TestWorkerPool(t *testing.T) {
	pool := batch.NewWorkerPool[int, int](4, 2)
	pool.Start(func(x int) int { return x * x })

	go func() {
		for i := 0; i < 100; i++ {
			pool.AddJob(i)
		}
		pool.Close()
	}()
	go pool.Wait()

	var got []int
	for r := range pool.CollectResults() {
		got = append(got, r)
	}
	sort.Ints(got)

	want := make([]int, 100)
	for i := range want {
		want[i] = i * i
	}
	assert.Equal(t, want, got)
}

func TestWorkerPoolNoWorkers(t *testing.T) {
	// a non-positive worker count still runs one worker
	pool := batch.NewWorkerPool[string, int](0, 0)
	pool.Start(func(s string) int { return len(s) })
	go func() {
		pool.AddJob("abc")
		pool.Close()
	}()
	go pool.Wait()

	var got []int
	for r := range pool.CollectResults() {
		got = append(got, r)
	}
	assert.Equal(t, []int{3}, got)
}
