// Package logging provides structured logging using Go's standard library log/slog.
// Loggers write JSON records and are supplied to the Fx container by the application.
//
// Fatal is the single place where a configuration error turns into process
// termination: it writes one diagnostic record and calls the exit function it
// is given.
package logging
