package statcache

import "os"

// WithStatFunc replaces the stat syscall, for counting calls in tests.
func (c *Cache) WithStatFunc(fn func(string) (os.FileInfo, error)) *Cache {
	c.stat = fn
	return c
}
