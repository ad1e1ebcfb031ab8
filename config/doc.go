// Package config loads configuration structures from documents at startup.
//
// Loading is split across five extension points:
//   - DataFetcher: retrieves raw config data (file, static bytes, ...)
//   - Parser: turns raw data into a document tree (see config/parser/yaml and config/parser/json)
//   - Loader: implemented by the config struct, reads its fields with the access getters
//   - Defaulter: applies default values after loading
//   - Validator: validates the loaded config
//
// # Sections
//
// Provider accepts a path selecting the object handed to Load. Paths use
// colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// # Failing fast
//
// A missing required key or a value of the wrong type makes Provider return an
// error that wraps access.ErrMissingKey or access.ErrTypeMismatch. Nothing is
// recovered: the application is expected to stop starting up, report the error
// once and exit (conf.App.Run does this through logging.Fatal).
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int
//	    BaseURL string
//	}
//
//	func (c *APIConfig) Load(section *document.Object) error {
//	    var err error
//	    if c.BaseURL, err = access.GetString(section, "base_url"); err != nil {
//	        return err
//	    }
//	    c.Timeout, err = access.GetOptionalInt(section, "timeout", 30)
//	    return err
//	}
//
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
