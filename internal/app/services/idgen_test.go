package services

import (
	"sync"
	"testing"
	"time"
)

func TestIDGeneratorMonotonic(t *testing.T) {
	var g idGenerator
	prev := g.next()
	for i := 0; i < 1000; i++ {
		id := g.next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestIDGeneratorUniqueUnderConcurrency(t *testing.T) {
	var g idGenerator

	const workers, perWorker = 8, 200
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- g.next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestIDGeneratorTracksClock(t *testing.T) {
	var g idGenerator
	id := g.next()

	now := time.Now().UnixMilli()
	if id > now+1 {
		t.Fatalf("id %d is ahead of the clock %d", id, now)
	}
}
