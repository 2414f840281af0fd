package usecase

import (
	"hash/fnv"
	"sync"
)

// OpLocks serializes mutating operations that target the same entity.
// Each repository call is atomic on its own; the lock makes the whole
// operation exclusive for its target, so two concurrent calls on one
// game, instance, listing or pool run one after the other and the loser
// re-reads the winner's final state. Keys hash onto a fixed set of
// stripes; a collision only over-serializes, never under-serializes.
type OpLocks struct {
	stripes [64]sync.Mutex
}

func NewOpLocks() *OpLocks {
	return &OpLocks{}
}

// Lock acquires the stripe for key and returns the release func.
// Operations take exactly one lock, so stripes cannot deadlock.
func (l *OpLocks) Lock(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &l.stripes[h.Sum32()%uint32(len(l.stripes))]
	m.Lock()
	return m.Unlock
}

func gameLockKey(id string) string     { return "game/" + id }
func instanceLockKey(id string) string { return "instance/" + id }
func listingLockKey(id string) string  { return "listing/" + id }
func poolLockKey(id string) string     { return "pool/" + id }
