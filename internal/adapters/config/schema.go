package config

// File represents the structure of the modcache.yaml configuration file.
type File struct {
	Version        string   `yaml:"version"`
	LibraryPaths   []string `yaml:"library_paths"`
	FontExtensions []string `yaml:"font_extensions"`
	Debounce       string   `yaml:"debounce"`
}
