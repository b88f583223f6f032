package log

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{name: "default", infoOn: true, warnOn: true},
		{name: "verbose", verbose: true, debugOn: true, infoOn: true, warnOn: true},
		{name: "quiet", quiet: true, warnOn: true},
		{name: "quiet wins over verbose", verbose: true, quiet: true, warnOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.verbose, tt.quiet)
			logger := slog.Default()
			ctx := context.Background()

			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := logger.Enabled(ctx, slog.LevelInfo); got != tt.infoOn {
				t.Errorf("info enabled = %v, want %v", got, tt.infoOn)
			}
			if got := logger.Enabled(ctx, slog.LevelWarn); got != tt.warnOn {
				t.Errorf("warn enabled = %v, want %v", got, tt.warnOn)
			}
		})
	}
}
