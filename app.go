package conf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	"github.com/0xalexb/hjarta-conf/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
type App struct {
	app    *fx.App
	logger *slog.Logger
	exit   logging.ExitFunc
	// err is a configuration error found before the container was built.
	err error
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	output := options.Output
	if output == nil {
		output = os.Stderr
	}

	exit := options.Exit
	if exit == nil {
		exit = os.Exit
	}

	loggerConfig, err := loadLoggerConfig(&options)
	logger := logging.NewLogger(loggerConfig, output)

	return &App{
		app:    configure(&options, loggerConfig, logger),
		logger: logger,
		exit:   exit,
		err:    err,
	}
}

func configure(options *Options, loggerConfig logging.LoggerConfig, logger *slog.Logger) *fx.App {
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

// loadLoggerConfig starts from WithLogLevel and applies the logging section of
// the configuration file when one is set. On error the WithLogLevel settings
// are returned so the error can still be logged.
func loadLoggerConfig(options *Options) (logging.LoggerConfig, error) {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel}

	if options.ConfigFile == "" || options.LoggingSection == "" {
		return loggerConfig, nil
	}

	fetcher, err := filefetcher.NewFetcher(options.ConfigFile)()
	if err != nil {
		return loggerConfig, fmt.Errorf("logging section: %w", err)
	}

	loaded, err := config.Provider(&logging.LoggerConfig{Level: options.LogLevel}, options.LoggingSection)(
		ParserForFile(options.ConfigFile), fetcher,
	)
	if err != nil {
		return loggerConfig, fmt.Errorf("logging section: %w", err)
	}

	return *loaded, nil
}

// Start starts the Fx application. Configuration errors raised while building
// the container are returned here.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		if app.err != nil {
			return fmt.Errorf("failed to start app: %w", app.err)
		}

		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
// If startup fails, for instance on a missing or mistyped configuration key, Run
// reports the error once through logging.Fatal and exits with a failure status.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	err := app.Start()
	if err != nil {
		logging.Fatal(app.logger, err, app.exit)

		return
	}

	sig := <-app.app.Done()
	app.logger.Info("shutting down", slog.String("signal", sig.String()))

	err = app.Stop()
	if err != nil {
		app.logger.Error("failed to stop app", slog.String("error", err.Error()))
		app.exit(logging.FailureCode)
	}
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
