package domain

import "go.trai.ch/zerr"

var (
	// ErrParseFailed is returned by a parser when source text is malformed.
	ErrParseFailed = zerr.New("failed to parse module")

	// ErrModuleReadFailed is returned when a module's source cannot be read.
	ErrModuleReadFailed = zerr.New("failed to read module source")

	// ErrModuleNotFound is returned when the requested root module does not exist.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrIncludeNotFound is reported when an include cannot be located on the search path.
	ErrIncludeNotFound = zerr.New("can't open include file")

	// ErrIncludeCycle is reported when an include is already being resolved further up the stack.
	ErrIncludeCycle = zerr.New("include cycle detected")

	// ErrLibraryCompileFailed is reported when a used library cannot be parsed on first sight.
	ErrLibraryCompileFailed = zerr.New("failed to compile library")

	// ErrFontUnreadable is reported when a used font file is not a regular file.
	ErrFontUnreadable = zerr.New("can't read font")

	// ErrEvaluationFailed is reported when instantiating a module fails.
	ErrEvaluationFailed = zerr.New("evaluation failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares a schema version this build does not know.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidDebounce is returned when the configured debounce window is not a valid duration.
	ErrInvalidDebounce = zerr.New("invalid debounce duration")
)
