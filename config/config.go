package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/access"
	"github.com/0xalexb/hjarta-conf/document"
)

// ErrEmptyData is returned by parsers when the input holds no document.
var ErrEmptyData = errors.New("empty data")

// ErrRootNotObject is returned by parsers when the top-level value is not an object.
var ErrRootNotObject = errors.New("document root is not an object")

// ErrNotLoader is returned when the target passed to Provider does not implement Loader.
var ErrNotLoader = errors.New("target does not implement config.Loader")

// Parser turns raw configuration data into a document tree.
// The root of a configuration document is always an object.
type Parser interface {
	Parse(data []byte) (*document.Object, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Loader reads a configuration structure out of its document section,
// typically with the access package getters.
type Loader interface {
	Load(section *document.Object) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, loads, sets defaults, and validates configuration data.
//
// The path selects the section handed to the target's Load method, using
// colon (:) as the separator for nested keys ("" selects the whole document).
// Lookup errors keep their identity, so callers can match them with
// errors.Is(err, access.ErrMissingKey) or access.ErrTypeMismatch.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		targetLoader, isLoader := any(target).(Loader)
		if !isLoader {
			return nil, fmt.Errorf("%w: %T", ErrNotLoader, target)
		}

		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		root, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		section, err := access.Path(root, path)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", path, err)
		}

		err = targetLoader.Load(section)
		if err != nil {
			return nil, fmt.Errorf("loading error: %w", err)
		}

		slog.Debug("configuration loaded", slog.String("path", path), slog.Int("keys", access.CountChildren(section)))

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
