// Command confget prints one typed value from a configuration file.
//
//	confget -file config.json -section server -key port -type int
//	confget -file config.yaml -key tls -type bool -default false
//
// A missing required key or a value of the wrong type is reported as a single
// diagnostic line and the command exits with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/access"
	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	"github.com/0xalexb/hjarta-conf/document"
	"github.com/0xalexb/hjarta-conf/logging"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

var (
	errNoFile      = fmt.Errorf("%w: -file is required", cli.ErrUsage)
	errNoKey       = fmt.Errorf("%w: -key is required", cli.ErrUsage)
	errUnknownType = fmt.Errorf("%w: unknown -type", cli.ErrUsage)
	errBadDefault  = fmt.Errorf("%w: invalid -default", cli.ErrUsage)
)

type getConfig struct {
	*cli.Command

	File    string `cli:"name=file aliases=f desc='configuration file to read'"`
	Format  string `cli:"name=format desc='json or yaml; guessed from the file extension when empty'"`
	Section string `cli:"name=section aliases=s desc='colon-separated path of the object holding the key'"`
	Key     string `cli:"name=key aliases=k desc='key to read'"`
	Type    string `cli:"name=type aliases=t desc='string, int, int64, bool, float, raw or count'"`

	def        string
	hasDefault bool
}

func main() {
	cli.MainContext(context.Background(), confgetCommand(&getConfig{Type: "string"}))
}

// confgetCommand returns the confget command reading its options into cfg.
func confgetCommand(cfg *getConfig) *cli.Command {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	opts = append(opts, &cli.Opt{
		Name:        "default",
		Description: "value used when the key is absent",
		Type:        cli.NamedFuncOpt(cfg.defaultOpt, "(value)"),
	})

	return cli.NewCommandAt(&cfg.Command, "confget").
		WithSynopsis("confget -file F [-format json|yaml] [-section a:b] [-key K] [-type T] [-default V]").
		WithDescription("confget prints one typed value from a configuration file.").
		WithOpts(opts...).
		WithRun(cfg.runReported)
}

func (cfg *getConfig) defaultOpt(_ *cli.Context, a string) (any, error) {
	cfg.def = a
	cfg.hasDefault = true

	return a, nil
}

// runReported reports configuration errors itself; usage errors go back to cli.
func (cfg *getConfig) runReported(cc *cli.Context, args []string) error {
	err := cfg.run(cc, args)
	if err == nil || errors.Is(err, cli.ErrUsage) {
		return err
	}

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, logging.Diagnostic(err))

		return cli.ExitCodeErr(logging.FailureCode)
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: logging.DefaultLevel}, os.Stderr)
	logging.Fatal(logger, err, os.Exit)

	return nil
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrUsage, args)
	}

	if cfg.File == "" {
		return errNoFile
	}

	if cfg.Key == "" && cfg.Type != "count" {
		return errNoKey
	}

	fetcher, err := filefetcher.NewFetcher(cfg.File)()
	if err != nil {
		return err
	}

	section, err := loadSection(fetcher, cfg.parser(), cfg.Section)
	if err != nil {
		return err
	}

	out, err := cfg.lookup(section)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cc.Out, out)

	return err
}

//nolint:ireturn // parser depends on flags
func (cfg *getConfig) parser() config.Parser {
	if cfg.Format != "" {
		return conf.ParserForFormat(cfg.Format)
	}

	return conf.ParserForFile(cfg.File)
}

func loadSection(fetcher config.DataFetcher, parser config.Parser, path string) (*document.Object, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return access.Path(root, path)
}

//nolint:cyclop // one branch per value type
func (cfg *getConfig) lookup(section *document.Object) (string, error) {
	switch cfg.Type {
	case "string":
		if cfg.hasDefault {
			return access.GetOptionalString(section, cfg.Key, cfg.def)
		}

		return access.GetString(section, cfg.Key)
	case "int":
		return cfg.lookupInt(section)
	case "int64":
		return cfg.lookupInt64(section)
	case "bool":
		return cfg.lookupBool(section)
	case "float":
		return cfg.lookupFloat(section)
	case "raw":
		val, err := access.GetValue(section, cfg.Key)
		if err != nil {
			return "", err
		}

		return document.Text(val), nil
	case "count":
		if cfg.Key == "" {
			return strconv.Itoa(access.CountChildren(section)), nil
		}

		obj, err := access.GetObject(section, cfg.Key)
		if err != nil {
			return "", err
		}

		return strconv.Itoa(access.CountChildren(obj)), nil
	default:
		return "", fmt.Errorf("%w %q", errUnknownType, cfg.Type)
	}
}

func (cfg *getConfig) lookupInt(section *document.Object) (string, error) {
	var (
		val int
		err error
	)

	if cfg.hasDefault {
		def, parseErr := strconv.Atoi(cfg.def)
		if parseErr != nil {
			return "", fmt.Errorf("%w: %w", errBadDefault, parseErr)
		}

		val, err = access.GetOptionalInt(section, cfg.Key, def)
	} else {
		val, err = access.GetInt(section, cfg.Key)
	}

	return strconv.Itoa(val), err
}

func (cfg *getConfig) lookupInt64(section *document.Object) (string, error) {
	var (
		val int64
		err error
	)

	if cfg.hasDefault {
		def, parseErr := strconv.ParseInt(cfg.def, 10, 64)
		if parseErr != nil {
			return "", fmt.Errorf("%w: %w", errBadDefault, parseErr)
		}

		val, err = access.GetOptionalInt64(section, cfg.Key, def)
	} else {
		val, err = access.GetInt64(section, cfg.Key)
	}

	return strconv.FormatInt(val, 10), err
}

func (cfg *getConfig) lookupBool(section *document.Object) (string, error) {
	var (
		val bool
		err error
	)

	if cfg.hasDefault {
		def, parseErr := strconv.ParseBool(cfg.def)
		if parseErr != nil {
			return "", fmt.Errorf("%w: %w", errBadDefault, parseErr)
		}

		val, err = access.GetOptionalBool(section, cfg.Key, def)
	} else {
		val, err = access.GetBool(section, cfg.Key)
	}

	return strconv.FormatBool(val), err
}

func (cfg *getConfig) lookupFloat(section *document.Object) (string, error) {
	var (
		val float64
		err error
	)

	if cfg.hasDefault {
		def, parseErr := strconv.ParseFloat(cfg.def, 64)
		if parseErr != nil {
			return "", fmt.Errorf("%w: %w", errBadDefault, parseErr)
		}

		val, err = access.GetOptionalFloat64(section, cfg.Key, def)
	} else {
		val, err = access.GetFloat64(section, cfg.Key)
	}

	return strconv.FormatFloat(val, 'g', -1, 64), err
}
