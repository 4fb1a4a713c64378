package domain

import "unique"

// InternedString is a file name shared by every location of a module.
// The zero value is the empty string.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// IsZero reports whether is was never set.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// Same reports whether both values intern the same string. It compares
// handles, not contents.
func (is InternedString) Same(other InternedString) bool {
	return is.h == other.h
}
