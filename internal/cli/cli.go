package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/odmoptions/internal/app"
	"github.com/specialistvlad/odmoptions/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
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

const configFlag = "config"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings resolve in this order: flags, environment, configuration file,
// flag defaults. The source root may also be given as the only positional
// argument; --root wins when both are present.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	v := viper.New()

	var positional []string
	ran := false
	cmd := &cobra.Command{
		Use:   "odmoptions [flags] [ROOT]",
		Short: "Collect the command-line options a photogrammetry pipeline declares.",
		Long: `odmoptions loads the pipeline's configuration unit from ROOT, runs its
declaration routine against a recording parser and prints every declared
option as a JSON object of identifier to attributes.

Arguments:
  ROOT
    Directory containing the opendm/ units. Same as --root.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, rest []string) error {
			positional = rest
			ran = true
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	flags := cmd.Flags()
	flags.StringP(config.KeyRoot, "r", "", "Directory containing the opendm/ units.")
	flags.StringP(config.KeyOutput, "o", "", "Also write the result to this file. Env: "+config.OutputEnvVar+".")
	flags.Bool(config.KeyCanonical, false, "Emit canonical JSON (RFC 8785) with sorted keys.")
	flags.StringP(configFlag, "c", "", "Path to an HCL configuration file.")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String(config.KeyLogFormat, config.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := v.BindPFlags(flags); err != nil {
		return nil, false, err
	}
	if err := v.BindEnv(config.KeyOutput, config.OutputEnvVar); err != nil {
		return nil, false, err
	}

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !ran {
		// Help was requested and printed.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	if path := v.GetString(configFlag); path != "" {
		file, err := config.LoadFile(path, os.Environ())
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		for key, value := range file.Settings() {
			v.SetDefault(key, value)
		}
		slog.Debug("Configuration file applied.", "path", path)
	}

	root := v.GetString(config.KeyRoot)
	if len(positional) > 0 && !flags.Changed(config.KeyRoot) {
		root = positional[0]
	}
	slog.Debug("Source root determined.", "root", root)

	logFormat := strings.ToLower(v.GetString(config.KeyLogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(v.GetString(config.KeyLogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Root:      root,
		Output:    v.GetString(config.KeyOutput),
		Canonical: v.GetBool(config.KeyCanonical),
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("%v\n\n%s", err, cmd.UsageString())}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
