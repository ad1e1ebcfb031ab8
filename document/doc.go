// Package document defines the in-memory tree that configuration parsers produce.
//
// A document is a tree of Node values. Node is a closed set of variants:
//
//	String, Int, Int64, Float, Bool  scalars
//	*Object                          string-keyed children, unique keys, insertion order kept
//	Array                            ordered children
//	Null                             explicit null
//
// Consumers dispatch on the concrete type with a type switch, or compare the
// Kind of a node. The tree carries no parent pointers and no locks: it is built
// once by a parser and then read, so concurrent readers are safe as long as
// nobody mutates it.
//
// Text renders any node as compact JSON, which is how diagnostics show the
// object a failing key was looked up in.
package document
