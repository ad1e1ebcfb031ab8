package document

import "math"

// Kind is the variant tag of a Node.
type Kind uint8

// Node variants.
const (
	KindNull Kind = iota
	KindString
	KindInt
	KindInt64
	KindFloat
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Node is a value in a document tree. The set of implementations is closed.
type Node interface {
	Kind() Kind
	isNode()
}

// String is a string value. It holds arbitrary bytes, including NUL.
type String string

// Int is an integer that fits in 32 bits.
type Int int32

// Int64 is an integer outside the 32-bit range.
type Int64 int64

// Float is a floating point number.
type Float float64

// Bool is a boolean value.
type Bool bool

// Null is the explicit null value.
type Null struct{}

// Array is an ordered list of nodes.
type Array []Node

func (String) Kind() Kind { return KindString }
func (Int) Kind() Kind    { return KindInt }
func (Int64) Kind() Kind  { return KindInt64 }
func (Float) Kind() Kind  { return KindFloat }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }
func (Array) Kind() Kind  { return KindArray }

func (String) isNode() {}
func (Int) isNode()    {}
func (Int64) isNode()  {}
func (Float) isNode()  {}
func (Bool) isNode()   {}
func (Null) isNode()   {}
func (Array) isNode()  {}

// Integer returns v as Int when it fits in 32 bits, and as Int64 otherwise.
// Parsers use it so that the variant of a number depends only on its value.
//
//nolint:ireturn // the variant is chosen by value
func Integer(v int64) Node {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int(v)
	}

	return Int64(v)
}
