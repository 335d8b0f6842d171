// Package objpath resolves dotted path expressions against arbitrary Go
// object graphs.
//
// A path names a chain of member hops, each optionally followed by a
// bracketed non-negative integer indexer:
//
//	OriginalSource.Items[0].Title
//
// Members resolve through the MemberAccessor capability when the current
// value implements it, otherwise through an exported zero-argument
// single-result method of the same name (the getter convention). Struct
// fields and unexported methods are never consulted. Indexers apply to
// Sequence implementations, slices, and arrays.
//
// Resolution never returns an error. Missing members, non-indexable
// values, out-of-range indexes, and malformed indexer syntax all degrade
// to a miss, and a nil value reached part-way through the chain propagates
// to a nil result. Lookup keeps the two outcomes apart; Resolve collapses
// both to nil.
//
// Each distinct path string is tokenized once per resolver and the parsed
// form is reused by later calls, including concurrent ones.
package objpath
