package document

import (
	"iter"
	"slices"
)

// Member is a key/value pair used to build an Object.
type Member struct {
	Key   string
	Value Node
}

// Object is a node with unique string keys. Lookup is by exact, case-sensitive
// key; iteration and rendering follow insertion order.
//
// The zero value is not usable; create objects with NewObject. A nil *Object
// behaves as an empty object for reads.
type Object struct {
	keys   []string
	values map[string]Node
}

// NewObject creates an object holding the given members in order.
// A repeated key keeps its first position and takes the last value.
func NewObject(members ...Member) *Object {
	obj := &Object{
		keys:   make([]string, 0, len(members)),
		values: make(map[string]Node, len(members)),
	}

	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}

	return obj
}

// Kind returns KindObject.
func (*Object) Kind() Kind { return KindObject }

func (*Object) isNode() {}

// Set stores value under key. A nil value is stored as Null.
// Setting an existing key replaces its value without changing its position.
func (o *Object) Set(key string, value Node) {
	if value == nil {
		value = Null{}
	}

	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Get returns the child stored under key.
//
//nolint:ireturn // children are variants
func (o *Object) Get(key string) (Node, bool) {
	if o == nil {
		return nil, false
	}

	val, found := o.values[key]

	return val, found
}

// Len returns the number of children.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return slices.Clone(o.keys)
}

// All iterates over the children in insertion order.
func (o *Object) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if o == nil {
			return
		}

		for _, key := range o.keys {
			if !yield(key, o.values[key]) {
				return
			}
		}
	}
}

// String renders the object as compact JSON.
func (o *Object) String() string {
	return Text(o)
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, o), nil
}
