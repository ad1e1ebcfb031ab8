package conf

import (
	"io"

	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	"github.com/0xalexb/hjarta-conf/logging"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	// Output receives log records; defaults to os.Stderr.
	Output io.Writer
	// Exit is called after a fatal startup error; defaults to os.Exit.
	Exit logging.ExitFunc
	// ConfigFile is the path given to WithConfigFile.
	ConfigFile string
	// LoggingSection is the section of ConfigFile the logger is configured from.
	LoggingSection string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput sets the writer log records go to.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}

// WithExitFunc replaces os.Exit for fatal startup errors.
func WithExitFunc(exit logging.ExitFunc) Option {
	return func(opts *Options) {
		opts.Exit = exit
	}
}

// WithConfigFile supplies config.Parser and config.DataFetcher for the file at path.
// The parser is chosen from the file extension (see ParserForFile). The file is
// read when the container first needs the fetcher.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
		opts.Modules = append(opts.Modules, fx.Module("config-source",
			fx.Provide(func() config.Parser {
				return ParserForFile(path)
			}),
			fx.Provide(func() (config.DataFetcher, error) {
				fetcher, err := filefetcher.NewFetcher(path)()
				if err != nil {
					return nil, err
				}

				return fetcher, nil
			}),
		))
	}
}

// WithLoggingSection configures the application logger from the section at
// path of the file given to WithConfigFile:
//
//	logging:
//	  level: debug
//	  add_source: true
//
// The section's keys override WithLogLevel. The section is read before the
// container is built; a bad section fails Start like any other configuration
// error. Without WithConfigFile the option has no effect.
func WithLoggingSection(path string) Option {
	return func(opts *Options) {
		opts.LoggingSection = path
	}
}

// WithConfig adds a module providing *T, loaded from the section at path.
// Call multiple times with different names and types to load several sections.
func WithConfig[T any](name string, target *T, path string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.Module(name, target, path))
	}
}
