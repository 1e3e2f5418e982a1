package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/wireframego/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("wireframego", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wireframego - Renders declarative wireframe documents into resolved frame trees.

Usage:
  wireframego [options] [FRAMES_PATH]

Arguments:
  FRAMES_PATH
    Path to a single .hcl frame document or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	framesFlag := flagSet.String("frames", "", "Path to the frame document file or directory.")
	fFlag := flagSet.String("f", "", "Path to the frame document file or directory (shorthand).")
	componentsFlag := flagSet.String("components", "", "Path to the component library file or directory.")
	outFlag := flagSet.String("out", "", "Write the export document to this file instead of stdout.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for the procedural generators. 0 uses a fresh seed per run.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *framesFlag != "" {
		path = *framesFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		FramesPath:     path,
		ComponentsPath: *componentsFlag,
		OutPath:        *outFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		Seed:           *seedFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
