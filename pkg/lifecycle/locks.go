package lifecycle

import "sync"

// keyedMutex serializes writers per lead id so concurrent mutations to the
// same lead apply one at a time. Entries are never removed; the set of ids
// is small and bounded by the lead table.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int]*sync.Mutex)}
}

// lock acquires the mutex for id and returns its unlock func.
func (k *keyedMutex) lock(id int) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
