package export

// Counter tracks crop numbers per source-image path. Numbers are handed out
// with Peek and advanced with Commit only after a write succeeds, so a failed
// export never consumes a slot and successful crops of one image number
// 1..N without gaps. The zero value is ready to use.
type Counter struct {
	counts map[string]int
}

func NewCounter() *Counter { return &Counter{counts: make(map[string]int)} }

// Peek returns the number the next successful crop of source will carry.
func (c *Counter) Peek(source string) int {
	if c == nil {
		return 1
	}
	return c.counts[source] + 1
}

// Commit records a successful crop of source and returns the new count.
func (c *Counter) Commit(source string) int {
	if c == nil {
		return 0
	}
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[source]++
	return c.counts[source]
}

// Count returns how many crops have been saved for source so far.
func (c *Counter) Count(source string) int {
	if c == nil {
		return 0
	}
	return c.counts[source]
}
