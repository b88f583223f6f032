package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// runScrub executes the root command with args and returns the captured
// stdout, stderr, and error. Shared flag state is reset first so tests
// do not bleed into each other.
func runScrub(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	resetSanitizeOpts(valueCmd, &valueOpts)
	resetSanitizeOpts(fileCmd, &fileOpts)
	resetHelpFlag(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetSanitizeOpts clears option values and the pflag "changed" markers
// left behind by a previous Execute.
func resetSanitizeOpts(cmd *cobra.Command, opts *sanitizeOptions) {
	*opts = sanitizeOptions{}
	for _, name := range []string{"type", "lang"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

// resetHelpFlag undoes a sticky --help from an earlier Execute, which
// would otherwise short-circuit every later run of the same command.
func resetHelpFlag(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
}
