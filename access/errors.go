package access

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-conf/document"
)

// ErrMissingKey is returned when a required key is absent from an object.
var ErrMissingKey = errors.New("missing key")

// ErrTypeMismatch is returned when a key is present but holds another variant.
var ErrTypeMismatch = errors.New("type mismatch")

// KeyError describes a failed lookup. It wraps ErrMissingKey or ErrTypeMismatch
// and keeps the containing object so the message can show it.
type KeyError struct {
	Key    string
	Parent *document.Object
	// Expected and Actual are set for type mismatches only.
	Expected document.Kind
	Actual   document.Kind
	Err      error
}

func (e *KeyError) Error() string {
	if errors.Is(e.Err, ErrTypeMismatch) {
		return fmt.Sprintf("Key '%s' in object '%s' has invalid type", e.Key, document.Text(e.Parent))
	}

	return fmt.Sprintf("Key '%s' not found in object '%s'", e.Key, document.Text(e.Parent))
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func missingKey(parent *document.Object, key string) *KeyError {
	return &KeyError{
		Key:    key,
		Parent: parent,
		Err:    ErrMissingKey,
	}
}

func typeMismatch(node document.Node, expected document.Kind, parent *document.Object, key string) *KeyError {
	return &KeyError{
		Key:      key,
		Parent:   parent,
		Expected: expected,
		Actual:   node.Kind(),
		Err:      ErrTypeMismatch,
	}
}
