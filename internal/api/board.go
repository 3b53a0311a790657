package api

import "sync"

// ResultBoard holds the latest published search result under a monotonic
// "latest query wins" guard: a result may only publish while its sequence
// number is still the newest issued. A slow response from an abandoned
// search can therefore never overwrite a newer query's result.
type ResultBoard struct {
	mu     sync.Mutex
	seq    uint64
	latest *SearchResponse
}

// Begin registers a new search and returns its sequence number.
func (b *ResultBoard) Begin() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return b.seq
}

// Publish stores the result for the given sequence. Returns false (and
// stores nothing) when a newer search has been issued since Begin.
func (b *ResultBoard) Publish(seq uint64, res *SearchResponse) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq < b.seq {
		return false
	}
	b.latest = res
	return true
}

// Latest returns the most recently published result, if any.
func (b *ResultBoard) Latest() (*SearchResponse, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.latest == nil {
		return nil, false
	}
	return b.latest, true
}
