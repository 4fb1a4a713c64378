package domain

import "fmt"

// ReferenceKind distinguishes the two ways a module can reference another file.
type ReferenceKind uint8

const (
	// KindUse is a deferred reference, resolved lazily through the module cache.
	KindUse ReferenceKind = iota
	// KindInclude is an eager reference whose content is spliced in immediately.
	KindInclude
)

// String returns the source keyword for the kind.
func (k ReferenceKind) String() string {
	switch k {
	case KindUse:
		return "use"
	case KindInclude:
		return "include"
	default:
		return fmt.Sprintf("ReferenceKind(%d)", uint8(k))
	}
}

// Location identifies where a reference was declared.
// File is interned since every reference of a module shares it.
type Location struct {
	File   InternedString
	Line   int
	Column int
}

// String formats the location as file:line:column.
func (l Location) String() string {
	file := l.File.String()
	if file == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Column)
}

// Reference is a single use or include declaration.
// References are values and are never mutated after creation.
type Reference struct {
	Kind     ReferenceKind
	Filename string
	Location Location
}

// NewUse creates a deferred reference.
func NewUse(filename string, loc Location) Reference {
	return Reference{Kind: KindUse, Filename: filename, Location: loc}
}

// NewInclude creates an eager reference.
func NewInclude(filename string, loc Location) Reference {
	return Reference{Kind: KindInclude, Filename: filename, Location: loc}
}

// String renders the reference the way it is declared in source.
func (r Reference) String() string {
	return r.Kind.String() + " <" + r.Filename + ">"
}
