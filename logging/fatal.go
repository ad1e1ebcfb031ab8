package logging

import (
	"errors"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/access"
)

// FailureCode is the process exit status after a fatal configuration error.
const FailureCode = 1

// ExitFunc terminates the process with the given status. Entry points pass os.Exit.
type ExitFunc func(code int)

// Diagnostic returns the one-line report for err. When err carries an
// access.KeyError, the line is built from it alone:
//
//	Key 'port' not found in object '{"host":"localhost"}'. Exiting.
func Diagnostic(err error) string {
	var keyErr *access.KeyError
	if errors.As(err, &keyErr) {
		return keyErr.Error() + ". Exiting."
	}

	return err.Error() + ". Exiting."
}

// Fatal logs the diagnostic for err as a single error record and calls exit
// with FailureCode. The full error chain is attached as the "error" attribute.
func Fatal(logger *slog.Logger, err error, exit ExitFunc) {
	attrs := []any{slog.String("error", err.Error())}

	var keyErr *access.KeyError
	if errors.As(err, &keyErr) {
		attrs = append(attrs, slog.String("key", keyErr.Key))

		if errors.Is(keyErr, access.ErrTypeMismatch) {
			attrs = append(attrs,
				slog.String("expected", keyErr.Expected.String()),
				slog.String("actual", keyErr.Actual.String()),
			)
		}
	}

	logger.Error(Diagnostic(err), attrs...)
	exit(FailureCode)
}
