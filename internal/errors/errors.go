// Package errors shapes user-facing failures: every fatal path prints one
// "Error: ..." line on stderr and records the cause in the log file.
package errors

import (
	"fmt"
	"os"

	"github.com/sremy91/intuis-schedule-card/internal/logger"
)

// Format renders err as the single stderr line shown to the user.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal reports err and exits with code 1. A nil err is a no-op so command
// results can be passed through unconditionally.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal with printf-style formatting. Unlike Fatal it always
// exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
