// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered map decoding, so
// document objects keep the key order of the source. JSON input is accepted
// as well.
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
//
// Value mapping:
//   - mappings -> *document.Object (non-string keys are formatted as text)
//   - sequences -> document.Array
//   - integers -> document.Int, or document.Int64 beyond 32 bits
//   - floats -> document.Float
//   - strings, booleans, null -> document.String, document.Bool, document.Null
//
// The root must be a mapping; anything else is config.ErrRootNotObject.
package yaml
