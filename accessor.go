package objpath

// MemberAccessor lets a value answer member lookups directly, without
// exposing getter methods. Decoded documents, dynamic records, and wrappers
// around foreign object models implement it; the traversal engine consults
// the capability before falling back to reflection.
type MemberAccessor interface {
	// Member returns the named member's value and whether the member
	// exists. Absent members report false, never an error.
	Member(name string) (any, bool)
}

// Sequence is the ordered random-access capability targeted by bracketed
// indexers. The traversal engine consults it before falling back to
// reflection, which accepts slices and arrays only.
type Sequence interface {
	// Len reports the number of elements.
	Len() int
	// At returns the element at index i, where 0 <= i < Len().
	At(i int) any
}
