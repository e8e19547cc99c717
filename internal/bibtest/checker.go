package bibtest

import (
	"context"
	"sync"
)

// StubLinkChecker is a LinkChecker double with per-URL verdicts. It records
// every probed URL.
type StubLinkChecker struct {
	mu    sync.Mutex
	valid map[string]bool
	calls []string
}

// NewStubLinkChecker creates a stub that rejects every URL until verdicts
// are set.
func NewStubLinkChecker() *StubLinkChecker {
	return &StubLinkChecker{
		valid: make(map[string]bool),
	}
}

// SetValid sets the verdict for one URL.
func (c *StubLinkChecker) SetValid(url string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid[url] = ok
}

// CheckPDF records the probe and answers with the configured verdict.
func (c *StubLinkChecker) CheckPDF(_ context.Context, url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, url)
	return c.valid[url]
}

// Calls returns the URLs probed so far, in order.
func (c *StubLinkChecker) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.calls...)
}
