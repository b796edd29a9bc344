package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/karatsuba/internal/config"
	apperrors "github.com/agbru/karatsuba/internal/errors"
	"github.com/agbru/karatsuba/internal/logging"
	"github.com/agbru/karatsuba/internal/multiply"
	"github.com/agbru/karatsuba/internal/ui"
)

// Application represents the multiply application instance.
type Application struct {
	Config    config.AppConfig
	Factory   multiply.CalculatorFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f multiply.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the logger built from the --log-level setting.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application by parsing command-line arguments. args[0]
// is the program name. The returned error is a ConfigError, a
// ValidationError or flag.ErrHelp.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = multiply.NewDefaultFactory()
	}

	programName := "multiply"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveThresholds(cfg)

	if app.Logger == nil {
		// The level was checked by config.Validate.
		level, _ := logging.ParseLevel(app.Config.LogLevel)
		app.Logger = logging.NewLogger(errWriter, "multiply").WithLevel(level)
	}
	return app, nil
}

// Run executes the multiplication and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	return a.runMultiply(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// HandleStartupError reports an error returned by New and returns the exit
// code. Help requests exit successfully without further output.
func HandleStartupError(err error, errWriter io.Writer) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(errWriter, "Error: %v\n", err)
	return apperrors.ExitCode(err)
}
