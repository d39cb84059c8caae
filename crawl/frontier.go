package crawl

import (
	"strings"
	"sync"

	"github.com/Vikramardham/mcplibrary/bloom"
)

// Frontier is an in-memory FIFO crawl queue with Bloom filter deduplication.
// FIFO order gives breadth-first traversal, so shallow pages are fetched
// first within the page budget. It is safe for concurrent use.
//
// The visited check happens at enqueue time: once a URL is pushed it can
// never be pushed again in the same session, which keeps duplicate enqueues
// from racing in a concurrent crawl.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push adds a URL to the frontier, marking it visited atomically.
// Returns false if the URL has already been seen. Fragments are stripped
// before deduplication.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url = stripFragment(url)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the oldest queued URL. The bool result is false if the
// frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued at any point in the session.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(url))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
