package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/scrub/internal/detect"
	"github.com/davetashner/scrub/internal/redact"
	"github.com/davetashner/scrub/internal/sanitize"
)

var fileOpts sanitizeOptions

// fileCmd sanitizes the contents of one or more files.
var fileCmd = &cobra.Command{
	Use:   "file <path>...",
	Short: "Sanitize the contents of one or more files",
	Long: `Sanitize file contents. Use "-" to read standard input; stdin input
has trailing newlines trimmed, file contents are sanitized as-is. With
several paths the files are read and sanitized concurrently and results
are printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFile,
}

func init() {
	addSanitizeFlags(fileCmd.Flags(), &fileOpts)
}

// fileResult is the outcome of sanitizing one input path.
type fileResult struct {
	path      string
	kind      detect.Kind
	sanitized string
	err       error
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fileOpts.applyConfig(cmd.Flags(), cfg)

	override, explicit, err := fileOpts.kind()
	if err != nil {
		return err
	}

	results := make([]fileResult, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			r := fileResult{path: path}
			input, err := readInput(cmd, path)
			if err != nil {
				r.err = err
			} else if explicit {
				r.kind, r.sanitized = sanitize.ValueAs(input, override)
			} else {
				r.kind, r.sanitized = sanitize.Value(input)
			}
			results[i] = r
			return nil
		})
	}
	// Goroutines never return errors; failures are carried per-result so
	// one unreadable file does not suppress output for the rest.
	_ = g.Wait()

	out := cmd.OutOrStdout()
	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), redact.String(fmt.Sprintf("scrub: %v", r.err)))
			continue
		}
		slog.Debug("sanitized file", "path", r.path, "detected", r.kind)
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, colorComment.Sprintf("# file: %s", r.path))
		}
		printResult(out, r.kind, r.sanitized, fileOpts.languages)
	}

	switch {
	case failed == len(args):
		return exitError(ExitTotalFailure, "")
	case failed > 0:
		return exitError(ExitPartialRead, "")
	}
	return nil
}

// readInput reads a file, or stdin when path is "-". Stdin gets its
// trailing newlines trimmed for parity with the value command.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path
	if err != nil {
		return "", err
	}
	return string(data), nil
}
