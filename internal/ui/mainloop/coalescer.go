// Package mainloop holds the plumbing that funnels work onto the single UI
// goroutine: coalesced posting from other goroutines and an uptime-keyed
// timer queue drained by the UI loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks posted from any goroutine into a
// single task run on the UI goroutine. The latest posted callback wins.
type Coalescer[K comparable] struct {
	mu        sync.Mutex
	pending   map[K]bool
	callbacks map[K]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that hands work to post, which must run
// the function on the UI goroutine.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer[K]{
		pending:   make(map[K]bool),
		callbacks: make(map[K]func()),
		post:      post,
	}
}

// Post schedules fn under key. If a task for key is already queued, fn
// replaces its callback and nothing new is posted.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

// Pending reports whether a task for key is queued but not yet run.
func (c *Coalescer[K]) Pending(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

func (c *Coalescer[K]) run(key K) {
	c.mu.Lock()
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

// Destroy drops queued work. Later posts are ignored.
func (c *Coalescer[K]) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[K]bool{}
	c.callbacks = map[K]func(){}
	c.mu.Unlock()
}
