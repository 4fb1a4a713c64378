package modcache

// WithReadFile replaces the function used to read module sources.
// This is exported for testing purposes only.
func (c *Cache) WithReadFile(readFile func(string) ([]byte, error)) *Cache {
	c.readFile = readFile
	return c
}
