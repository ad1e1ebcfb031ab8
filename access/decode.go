package access

import "github.com/0xalexb/hjarta-conf/document"

func asString(n document.Node) (string, bool) {
	s, ok := n.(document.String)

	return string(s), ok
}

func asInt(n document.Node) (int, bool) {
	i, ok := n.(document.Int)

	return int(i), ok
}

func asInt64(n document.Node) (int64, bool) {
	switch v := n.(type) {
	case document.Int:
		return int64(v), true
	case document.Int64:
		return int64(v), true
	default:
		return 0, false
	}
}

func asBool(n document.Node) (bool, bool) {
	b, ok := n.(document.Bool)

	return bool(b), ok
}

func asFloat64(n document.Node) (float64, bool) {
	f, ok := n.(document.Float)

	return float64(f), ok
}

func asObject(n document.Node) (*document.Object, bool) {
	obj, ok := n.(*document.Object)

	return obj, ok
}
