// Package json provides a strict JSON parser implementation for the config package.
//
// It reads the input as a token stream so that object keys keep their source
// order and integers keep their exact value: numbers without fraction or
// exponent become document.Int or document.Int64, never floats.
//
// Usage:
//
//	parser := json.NewParser()
//	root, err := parser.Parse(data)
//
// Error Handling:
//   - config.ErrEmptyData for empty or blank input
//   - config.ErrRootNotObject when the top-level value is not an object
//   - ErrTrailingData when anything but whitespace follows the document
//   - integers outside the int64 range are reported with strconv.ErrRange
package json
