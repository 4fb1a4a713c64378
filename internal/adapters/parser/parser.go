// Package parser provides the default line-oriented module parser.
//
// It recognizes `use <file>` and `include <file>` declarations at the start
// of a line and keeps every other non-blank line as a body statement. It
// does not understand the rest of the language; a real front end can replace
// it through ports.Parser.
package parser

import (
	"bytes"
	"path/filepath"
	"strings"

	"go.trai.ch/modcache/internal/core/domain"
	"go.trai.ch/modcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

// Parser implements ports.Parser.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses src. The default parser treats fallback and regular parses alike.
func (p *Parser) Parse(src []byte, path string, _ bool) (*domain.FileModule, error) {
	m := domain.NewFileModule(filepath.Dir(path), filepath.Base(path))
	file := domain.NewInternedString(path)

	line := 0
	for raw := range bytes.Lines(src) {
		line++
		text := strings.TrimSuffix(strings.TrimSuffix(string(raw), "\n"), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		kind, rest, ok := declaration(trimmed)
		if !ok {
			m.AddStatement(strings.TrimRight(text, " \t\r"))
			continue
		}

		filename, err := target(rest)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", line)
		}

		loc := domain.Location{
			File:   file,
			Line:   line,
			Column: strings.Index(text, trimmed) + 1,
		}
		switch kind {
		case domain.KindUse:
			m.AddUse(filename, loc)
		case domain.KindInclude:
			m.AddInclude(filename, loc)
		}
	}
	return m, nil
}

// declaration reports whether line starts with a use or include keyword and
// returns the text following it.
func declaration(line string) (domain.ReferenceKind, string, bool) {
	for _, kind := range []domain.ReferenceKind{domain.KindUse, domain.KindInclude} {
		rest, found := strings.CutPrefix(line, kind.String())
		if !found {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		if strings.HasPrefix(rest, "<") {
			return kind, rest, true
		}
	}
	return 0, "", false
}

// target extracts the filename between angle brackets.
func target(rest string) (string, error) {
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return "", zerr.With(domain.ErrParseFailed, "reason", "unterminated file reference")
	}
	name := strings.TrimSpace(rest[1:end])
	if name == "" {
		return "", zerr.With(domain.ErrParseFailed, "reason", "empty file reference")
	}
	return name, nil
}
