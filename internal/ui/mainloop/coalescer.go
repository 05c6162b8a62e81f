package mainloop

import "sync"

// Coalescer collapses bursts of work posted under one key. The first post
// of a key schedules a run through post; posts arriving before that run
// only swap the callback, so the run sees the newest one.
type Coalescer struct {
	mu     sync.Mutex
	queued map[string]func()
	post   func(func())
	closed bool
}

// NewCoalescer creates a Coalescer scheduling runs through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post cannot be nil")
	}
	return &Coalescer{queued: make(map[string]func()), post: post}
}

// Post queues fn under key. It reports whether a new run was scheduled;
// false means fn replaced work already queued or the coalescer is closed.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	_, queued := c.queued[key]
	c.queued[key] = fn
	c.mu.Unlock()
	if queued {
		return false
	}

	c.post(func() { c.run(key) })
	return true
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.queued[key]
	delete(c.queued, key)
	closed := c.closed
	c.mu.Unlock()

	if ok && !closed {
		fn()
	}
}

// Pending reports whether work is queued for key.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.queued[key]
	return ok
}

// Close drops queued work. Later posts are ignored.
func (c *Coalescer) Close() {
	c.mu.Lock()
	c.closed = true
	clear(c.queued)
	c.mu.Unlock()
}
