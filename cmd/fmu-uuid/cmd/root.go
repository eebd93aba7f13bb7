package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mfenderov/fmu-uuid/internal/config"
	"github.com/mfenderov/fmu-uuid/internal/pipeline"
	"github.com/mfenderov/fmu-uuid/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitError    = 1  // I/O and other runtime failures
	ExitInternal = 2  // defects in fmu-uuid itself
	ExitUsage    = 64 // EX_USAGE from sysexits.h
)

// Version is overridden at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// UsageError reports a malformed command line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	v      *viper.Viper
	cfg    config.Config
}

// Execute runs fmu-uuid against the real filesystem and returns the exit code.
func Execute() int {
	return run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)
}

func run(args []string, fs afero.Fs, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Internal error: %v\n", r)
			code = ExitInternal
		}
	}()

	a := &app{
		fs:     fs,
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
		cfg:    config.Defaults(),
	}
	rootCmd := newRootCmd(a)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
		return ExitUsage
	}
	return ExitError
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fmu-uuid <input md.> <placeholder> <output md.> <output hdr.> <macro name>",
		Short: "Generates a GUID for an FMU",
		Long: `Generates a GUID for an FMU.

The GUID is a name-based (version 5) UUID derived from the model description
with all whitespace removed, so reformatting the file keeps the same GUID.
Every occurrence of the placeholder is replaced with the GUID, and a C header
defining a macro with the GUID string is written next to it.

Arguments:
  input md.   = Path to model description file for which to generate UUID.
  placeholder = String in input md. to replace with UUID in output md.
  output md.  = Path of output model description file.
  output hdr. = Path of output C header file that defines macro with UUID.
  macro name  = A name for the macro that contains the UUID string.

Flags are only recognized before the first argument. An input path
starting with '-' must follow '--'.`,
		Version:           Version,
		Args:              validateArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
		RunE:              a.run,
	}

	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := rootCmd.Flags()
	// Placeholders such as "-v" or "--GUID--" are arguments, not flags.
	flags.SetInterspersed(false)
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.String("log-format", config.FormatText, "log format: text or json")
	mustBindFlag(a.v, "log.verbose", flags.Lookup("verbose"))
	mustBindFlag(a.v, "log.format", flags.Lookup("log-format"))

	return rootCmd
}

// mustBindFlag panics if flag cannot be bound, which only happens when the
// flag was never registered.
func mustBindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

// validateArgs accepts no arguments (print usage) or exactly five.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 5 {
		return &UsageError{Err: fmt.Errorf("wrong number of command-line arguments (got %d, want 5)", len(args))}
	}
	return nil
}

func (a *app) initialize(_ *cobra.Command, _ []string) error {
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	switch a.cfg.Log.Format {
	case config.FormatText, config.FormatJSON:
	default:
		return &UsageError{Err: fmt.Errorf("unknown log format %q", a.cfg.Log.Format)}
	}

	initLogger(a.stderr, a.cfg.Log)
	return nil
}

func initLogger(w io.Writer, cfg config.Log) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Format == config.FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	store, err := storage.New(storage.Config{Fs: a.fs})
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	p := pipeline.New(store, func(msg string) {
		fmt.Fprintf(a.stderr, "Warning: %s\n", msg)
	})

	result, err := p.Run(pipeline.Request{
		InputPath:   args[0],
		Placeholder: args[1],
		OutputPath:  args[2],
		HeaderPath:  args[3],
		MacroName:   args[4],
	})
	if err != nil {
		return err
	}

	slog.Debug("stamp complete",
		"guid", result.GUID.String(),
		"replacements", result.Replacements,
		"duration", result.Duration,
	)
	return nil
}
