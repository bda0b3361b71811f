package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/validation"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// UserMessage returns the text shown to the user for err in lang. Schedule
// validation failures are translated; anything else falls back to Format.
func UserMessage(err error, lang string) string {
	if err == nil {
		return ""
	}
	tr := i18n.New(lang)
	switch {
	case stderrors.Is(err, validation.ErrSleepTooShort):
		return tr.T(i18n.SleepTooShort)
	case stderrors.Is(err, validation.ErrActiveSpanTooShort):
		return tr.T(i18n.SpanTooShort)
	}
	return Format(err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
