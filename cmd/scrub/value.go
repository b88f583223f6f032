package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/scrub/internal/detect"
	"github.com/davetashner/scrub/internal/sanitize"
)

var valueOpts sanitizeOptions

// valueCmd sanitizes a single value from an argument or stdin.
var valueCmd = &cobra.Command{
	Use:   "value [string]",
	Short: "Sanitize a single value",
	Long: `Sanitize a value passed as an argument, or read from standard input
when the argument is omitted or "-". Trailing newlines from stdin are
trimmed before detection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValue,
}

func init() {
	addSanitizeFlags(valueCmd.Flags(), &valueOpts)
}

func runValue(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	valueOpts.applyConfig(cmd.Flags(), cfg)

	override, explicit, err := valueOpts.kind()
	if err != nil {
		return err
	}

	var input string
	if len(args) == 1 && args[0] != "-" {
		input = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return exitError(ExitTotalFailure, "scrub: read stdin: %v", err)
		}
		input = strings.TrimRight(string(data), "\n")
	}

	var detected detect.Kind
	var sanitized string
	if explicit {
		detected, sanitized = sanitize.ValueAs(input, override)
	} else {
		detected, sanitized = sanitize.Value(input)
	}
	slog.Debug("sanitized value", "detected", detected, "bytes", len(input))

	printResult(cmd.OutOrStdout(), detected, sanitized, valueOpts.languages)
	return nil
}
