package access

import "github.com/0xalexb/hjarta-conf/document"

// GetValue returns the child stored under key without checking its variant.
//
//nolint:ireturn // raw lookup returns whichever variant is stored
func GetValue(parent *document.Object, key string) (document.Node, error) {
	val, found := parent.Get(key)
	if !found {
		return nil, missingKey(parent, key)
	}

	return val, nil
}

// CountChildren returns the number of immediate children of obj.
func CountChildren(obj *document.Object) int {
	return obj.Len()
}

// GetString returns the string stored under key. The bytes are returned as
// stored, embedded NUL included.
func GetString(parent *document.Object, key string) (string, error) {
	return get(parent, key, document.KindString, asString)
}

// GetOptionalString returns the string stored under key, or def when key is absent.
func GetOptionalString(parent *document.Object, key string, def string) (string, error) {
	return getOptional(parent, key, def, document.KindString, asString)
}

// GetInt returns the 32-bit integer stored under key.
// Integers outside the 32-bit range are a type mismatch; use GetInt64 for them.
func GetInt(parent *document.Object, key string) (int, error) {
	return get(parent, key, document.KindInt, asInt)
}

// GetOptionalInt returns the 32-bit integer stored under key, or def when key is absent.
func GetOptionalInt(parent *document.Object, key string, def int) (int, error) {
	return getOptional(parent, key, def, document.KindInt, asInt)
}

// GetInt64 returns the integer stored under key. Both Int and Int64 nodes are accepted.
func GetInt64(parent *document.Object, key string) (int64, error) {
	return get(parent, key, document.KindInt64, asInt64)
}

// GetOptionalInt64 returns the integer stored under key, or def when key is absent.
func GetOptionalInt64(parent *document.Object, key string, def int64) (int64, error) {
	return getOptional(parent, key, def, document.KindInt64, asInt64)
}

// GetBool returns the boolean stored under key.
func GetBool(parent *document.Object, key string) (bool, error) {
	return get(parent, key, document.KindBool, asBool)
}

// GetOptionalBool returns the boolean stored under key, or def when key is absent.
func GetOptionalBool(parent *document.Object, key string, def bool) (bool, error) {
	return getOptional(parent, key, def, document.KindBool, asBool)
}

// GetFloat64 returns the float stored under key. Integers are not accepted.
func GetFloat64(parent *document.Object, key string) (float64, error) {
	return get(parent, key, document.KindFloat, asFloat64)
}

// GetOptionalFloat64 returns the float stored under key, or def when key is absent.
func GetOptionalFloat64(parent *document.Object, key string, def float64) (float64, error) {
	return getOptional(parent, key, def, document.KindFloat, asFloat64)
}

// GetObject returns the object stored under key.
func GetObject(parent *document.Object, key string) (*document.Object, error) {
	val, err := GetValue(parent, key)
	if err != nil {
		return nil, err
	}

	err = ensureType(val, document.KindObject, parent, key)
	if err != nil {
		return nil, err
	}

	obj, _ := val.(*document.Object)

	return obj, nil
}

// GetOptionalObject returns the object stored under key, or def when key is absent.
func GetOptionalObject(parent *document.Object, key string, def *document.Object) (*document.Object, error) {
	return getOptional(parent, key, def, document.KindObject, asObject)
}

// GetArray returns the array stored under key.
func GetArray(parent *document.Object, key string) (document.Array, error) {
	val, err := GetValue(parent, key)
	if err != nil {
		return nil, err
	}

	err = ensureType(val, document.KindArray, parent, key)
	if err != nil {
		return nil, err
	}

	arr, _ := val.(document.Array)

	return arr, nil
}

func get[T any](
	parent *document.Object, key string, expected document.Kind, decode func(document.Node) (T, bool),
) (T, error) {
	val, err := GetValue(parent, key)
	if err != nil {
		var zero T

		return zero, err
	}

	return decodeAs(val, expected, parent, key, decode)
}

// getOptional waives absence only; a present value of another variant is still an error.
func getOptional[T any](
	parent *document.Object, key string, def T, expected document.Kind, decode func(document.Node) (T, bool),
) (T, error) {
	val, found := parent.Get(key)
	if !found {
		return def, nil
	}

	return decodeAs(val, expected, parent, key, decode)
}

func decodeAs[T any](
	val document.Node, expected document.Kind, parent *document.Object, key string, decode func(document.Node) (T, bool),
) (T, error) {
	out, ok := decode(val)
	if !ok {
		var zero T

		return zero, typeMismatch(val, expected, parent, key)
	}

	return out, nil
}

// ensureType fails with a type mismatch when node is not of the expected variant.
func ensureType(node document.Node, expected document.Kind, parent *document.Object, key string) error {
	if node.Kind() != expected {
		return typeMismatch(node, expected, parent, key)
	}

	return nil
}
