package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	scrublog "github.com/davetashner/scrub/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for scrub.
var rootCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Classify and sanitize sensitive strings",
	Long: `Scrub detects what kind of value a string is (email address, phone
number, URL, JSON document, env-style KEY=VALUE block, or plain text) and
applies a matching redaction: masking, query stripping, recursive JSON
rewriting, or SQL+HTML escaping. The sanitized value can additionally be
rendered as a string literal for a target programming language.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		scrublog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Invoking scrub without a subcommand is an error, but the help
		// text is still the most useful thing to show.
		_ = cmd.Help()
		return exitError(ExitInvalidArgs, "")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(versionCmd)
}
