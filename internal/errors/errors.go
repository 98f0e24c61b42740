// Package errors carries the CLI's terminal error conventions: everything
// the user sees is prefixed "Error: ", and fatal exits are logged first.
package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/joblit/internal/logger"
)

// Format renders an error with the standard "Error: " prefix, or "" for nil.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf renders a format string with the standard "Error: " prefix.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the error, prints it to stderr, and exits 1. A nil error is a
// no-op so it can sit directly on a command's return path.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs the formatted message, prints it to stderr, and exits 1.
func Fatalf(format string, args ...interface{}) {
	logger.Error("Command failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
