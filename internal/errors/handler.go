package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the terminal escape sequences used to highlight
// error messages. A nil ColorProvider prints plain text.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		timeoutErr    TimeoutError
		configErr     ConfigError
		validationErr ValidationError
	)
	switch {
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleCalculationError writes a message describing err to out and returns
// the matching exit code. A nil err writes nothing and returns ExitSuccess.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}

	elapsed := ""
	if duration > 0 {
		elapsed = fmt.Sprintf(" after %s", duration.Round(time.Microsecond))
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sCalculation timed out%s.%s\n", colors.Yellow(), elapsed, colors.Reset())
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sCalculation canceled%s.%s\n", colors.Yellow(), elapsed, colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sInvalid input: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sCalculation failed%s: %v%s\n", colors.Red(), elapsed, err, colors.Reset())
	}
	return code
}
