package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/dalibo/cartesian/internal"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const envPrefix = "CARTESIAN_"

// Controller holds flags/env values controlling the execution of cartesian.
type Controller struct {
	Color     bool   `koanf:"color"`
	Config    string `koanf:"config"`
	Count     bool   `koanf:"count"`
	Format    string `koanf:"format"`
	Help      bool   `koanf:"help"`
	Limit     int    `koanf:"limit"`
	Output    string `koanf:"output"`
	Quiet     int    `koanf:"quiet"`
	Verbose   int    `koanf:"verbose"`
	Verbosity string `koanf:"verbosity"`
	Version   bool   `koanf:"version"`
	LogLevel  slog.Level
}

// Outputs lists accepted --output values.
var Outputs = []string{"text", "yaml"}

func newFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.BoolP("help", "?", false, "Show this help message and exit.")
	flags.BoolP("version", "V", false, "Show version and exit.")
	flags.StringP("config", "c", "", "Path to YAML grid file. Use - for stdin.")
	flags.StringP("format", "f", "", "Format of each line, overriding grid format.")
	flags.StringP("output", "o", "text", "Output format: text or yaml.")
	flags.IntP("limit", "l", 0, "Stop after N lines. 0 for all.")
	flags.Bool("count", false, "Print the number of lines and exit.")
	flags.Bool("color", false, "Force color output.")
	flags.CountP("verbose", "v", "Increase log verbosity.")
	flags.CountP("quiet", "q", "Decrease log verbosity.")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS]\n\n", name)
		flags.PrintDefaults()
		os.Stderr.WriteString(dedent.Dedent(`

		cartesian renders one line per combination of grid dimensions.
		Options are also read from CARTESIAN_* environment variables,
		and from a .env file in working directory.
		Set CARTESIAN_VERBOSITY to debug, info, warn or error to set log level.
		`)) //nolint:errcheck
	}
	return flags
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// loadDotEnv sets variables from .env without overriding environment.
func loadDotEnv() {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return
	} else if err != nil {
		slog.Warn("Failed to load .env file.", "err", err)
		return
	}
	slog.Debug("Loaded .env file.")
}

// loadController merges defaults, environment and flags, in increasing
// priority.
func loadController(flags *pflag.FlagSet, args []string) (controller Controller, err error) {
	err = flags.Parse(args)
	if err != nil {
		return controller, usageError(err)
	}
	if flags.NArg() > 0 {
		return controller, usageError(fmt.Errorf("unexpected argument %s", flags.Arg(0)))
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(map[string]any{
		"color":  defaultColor(),
		"output": "text",
	}, k.Delim()), nil)

	_ = k.Load(env.Provider(envPrefix, k.Delim(), func(key string) string {
		key = strings.TrimPrefix(key, envPrefix)
		key = strings.ToLower(key)
		slog.Debug("Loading environment var.", "var", envPrefix+strings.ToUpper(key))
		return strings.ReplaceAll(key, "_", "-")
	}), nil)

	// posflag overrides with changed flags only, keeping env values.
	_ = k.Load(posflag.Provider(flags, k.Delim(), k), nil)

	err = k.Unmarshal("", &controller)
	if err != nil {
		return controller, usageError(err)
	}

	if controller.Limit < 0 {
		return controller, usageError(fmt.Errorf("bad limit %d, must be positive", controller.Limit))
	}
	if !slices.Contains(Outputs, controller.Output) {
		return controller, usageError(fmt.Errorf("bad output %s, must be one of %s", controller.Output, strings.Join(Outputs, ", ")))
	}

	controller.LogLevel = internal.ShiftLevel(controller.Verbose, controller.Quiet)
	if controller.Verbosity != "" {
		var level slog.Level
		err := level.UnmarshalText([]byte(controller.Verbosity))
		if err == nil {
			controller.LogLevel = level
		} else {
			slog.Warn("Bad verbosity.", "source", "env", "value", controller.Verbosity)
		}
	}
	return controller, nil
}
