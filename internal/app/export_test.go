package app

// WithReadFile replaces the function used to read root modules.
func (a *App) WithReadFile(readFile func(string) ([]byte, error)) *App {
	a.readFile = readFile
	return a
}
