package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/document"
)

// ErrTrailingData is returned when input continues after the top-level value.
var ErrTrailingData = errors.New("trailing data after document")

// ErrUnexpectedToken is returned when the token stream is not a well-formed value.
var ErrUnexpectedToken = errors.New("unexpected token")

// ErrTooDeep is returned when objects and arrays nest deeper than MaxDepth.
var ErrTooDeep = errors.New("exceeded max depth")

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// MaxDepth is the deepest nesting of objects and arrays Parse accepts.
const MaxDepth = 10000

// Parser implements config.Parser interface for strict JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes JSON data into a document. Object key order is preserved and
// a repeated key keeps the last value. Numbers without a fraction or exponent
// become integers; integers beyond 64 bits are rejected.
//
// Input must be valid UTF-8, so strings come back byte for byte as written.
func (p *Parser) Parse(data []byte) (*document.Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, config.ErrEmptyData
	}

	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	node, err := decodeValue(decoder, 0)
	if err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w at offset %d", ErrTrailingData, decoder.InputOffset())
	}

	root, isObject := node.(*document.Object)
	if !isObject {
		return nil, fmt.Errorf("%w: got %s", config.ErrRootNotObject, node.Kind())
	}

	return root, nil
}

// decodeValue reads one value; depth counts the objects and arrays around it.
//
//nolint:ireturn // one node per JSON value
func decodeValue(decoder *json.Decoder, depth int) (document.Node, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch val := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return nil, fmt.Errorf("%w of %d at offset %d", ErrTooDeep, MaxDepth, decoder.InputOffset())
		}

		switch val {
		case '{':
			return decodeObject(decoder, depth+1)
		case '[':
			return decodeArray(decoder, depth+1)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, val)
		}
	case string:
		return document.String(val), nil
	case json.Number:
		return decodeNumber(val)
	case bool:
		return document.Bool(val), nil
	case nil:
		return document.Null{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedToken, tok)
	}
}

func decodeObject(decoder *json.Decoder, depth int) (*document.Object, error) {
	obj := document.NewObject()

	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, isString := tok.(string)
		if !isString {
			return nil, fmt.Errorf("%w: object key %v", ErrUnexpectedToken, tok)
		}

		val, err := decodeValue(decoder, depth)
		if errors.Is(err, ErrTooDeep) {
			return nil, err
		}

		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		obj.Set(key, val)
	}

	// closing brace
	_, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(decoder *json.Decoder, depth int) (document.Array, error) {
	arr := document.Array{}

	for decoder.More() {
		val, err := decodeValue(decoder, depth)
		if errors.Is(err, ErrTooDeep) {
			return nil, err
		}

		if err != nil {
			return nil, fmt.Errorf("index %d: %w", len(arr), err)
		}

		arr = append(arr, val)
	}

	_, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return arr, nil
}

//nolint:ireturn // integer width decides the variant
func decodeNumber(num json.Number) (document.Node, error) {
	text := num.String()

	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", text, err)
		}

		return document.Float(f), nil
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("number %s: %w", text, err)
	}

	return document.Integer(i), nil
}
