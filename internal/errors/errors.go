package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/contribgrid/internal/logger"
)

// exit is swapped out by tests
var exit = os.Exit

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	FatalTo(os.Stderr, err)
}

// FatalTo is Fatal writing the message to w
func FatalTo(w io.Writer, err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(w, "%s\n", Format(err))
		exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	exit(1)
}
