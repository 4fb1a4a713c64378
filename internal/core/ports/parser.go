// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/modcache/internal/core/domain"

// Parser turns source text into a FileModule.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse parses src, read from path, into a new module.
	// The module's Path is the directory of path. fallback marks a top-level
	// parse whose content may be used when no better candidate exists.
	// A failed parse returns a nil module and an error; it never panics.
	Parse(src []byte, path string, fallback bool) (*domain.FileModule, error)
}
