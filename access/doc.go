// Package access reads typed values out of document objects.
//
// Every scalar type has two accessors:
//   - GetK(parent, key) requires the key. Absence returns an error wrapping
//     ErrMissingKey.
//   - GetOptionalK(parent, key, def) returns def when the key is absent.
//
// In both modes a key holding a different variant returns an error wrapping
// ErrTypeMismatch. Optionality waives absence only, never a wrong type, so a
// typo in a value is not silently replaced by its default.
//
// Errors are *KeyError values whose message names the key and renders the
// containing object as JSON:
//
//	Key 'port' not found in object '{"host":"localhost"}'
//	Key 'port' in object '{"port":"80"}' has invalid type
//
// Accessors never terminate the process. They are meant to run while a
// program loads its configuration at startup; the top level decides to
// report and exit (see logging.Fatal).
//
// Integers come in two variants. GetInt accepts only document.Int (32-bit);
// GetInt64 accepts both document.Int and document.Int64.
package access
