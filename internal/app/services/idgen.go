package services

import (
	"sync"
	"time"
)

// idGenerator hands out instant-derived ids. Ids stay comparable with data
// written by earlier versions that used raw wall-clock milliseconds, but two
// creations in the same millisecond no longer collide: the generator bumps
// past the last issued value whenever the clock has not advanced.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return now
}
