package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/document"

	"github.com/goccy/go-yaml"
)

// ErrUnsupportedValue is returned for decoded values that have no document variant.
var ErrUnsupportedValue = errors.New("unsupported value")

// ErrIntegerOverflow is returned for integers that do not fit in 64 signed bits.
var ErrIntegerOverflow = errors.New("integer overflows int64")

// Parser implements config.Parser interface for YAML data.
// JSON input is accepted too, being a subset of YAML.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a document. Mapping order is preserved.
func (p *Parser) Parse(data []byte) (*document.Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, config.ErrEmptyData
	}

	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	node, err := toNode(raw)
	if err != nil {
		return nil, err
	}

	root, isObject := node.(*document.Object)
	if !isObject {
		return nil, fmt.Errorf("%w: got %s", config.ErrRootNotObject, node.Kind())
	}

	return root, nil
}

//nolint:ireturn,cyclop // one case per decoded Go type
func toNode(raw any) (document.Node, error) {
	switch val := raw.(type) {
	case nil:
		return document.Null{}, nil
	case yaml.MapSlice:
		obj := document.NewObject()

		for _, item := range val {
			child, err := toNode(item.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", keyString(item.Key), err)
			}

			obj.Set(keyString(item.Key), child)
		}

		return obj, nil
	case map[string]any:
		obj := document.NewObject()

		for _, key := range slices.Sorted(maps.Keys(val)) {
			child, err := toNode(val[key])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}

			obj.Set(key, child)
		}

		return obj, nil
	case []any:
		arr := make(document.Array, 0, len(val))

		for i, item := range val {
			child, err := toNode(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			arr = append(arr, child)
		}

		return arr, nil
	case string:
		return document.String(val), nil
	case bool:
		return document.Bool(val), nil
	case int:
		return document.Integer(int64(val)), nil
	case int64:
		return document.Integer(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d", ErrIntegerOverflow, val)
		}

		return document.Integer(int64(val)), nil
	case float64:
		return document.Float(val), nil
	case time.Time:
		return document.String(val.Format(time.RFC3339Nano)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}

	return fmt.Sprint(key)
}
