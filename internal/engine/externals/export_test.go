package externals

// WithReadFile replaces the function used to read include sources.
// This is exported for testing purposes only.
func (r *Resolver) WithReadFile(readFile func(string) ([]byte, error)) *Resolver {
	r.readFile = readFile
	return r
}
