package main

import (
	"github.com/spf13/pflag"

	"github.com/davetashner/scrub/internal/config"
	"github.com/davetashner/scrub/internal/detect"
)

// sanitizeOptions holds the flags shared by the value and file commands.
type sanitizeOptions struct {
	kindName  string
	languages []string
}

// addSanitizeFlags registers the shared flags on a command's flag set.
func addSanitizeFlags(fs *pflag.FlagSet, o *sanitizeOptions) {
	fs.StringVarP(&o.kindName, "type", "t", "", "override detected type (email|phone|url|json|env|text)")
	fs.StringSliceVarP(&o.languages, "lang", "l", nil, "emit an escaped literal for each named language")
}

// applyConfig fills in config-file/env defaults for flags the user did not
// set explicitly, giving flags > env > file precedence.
func (o *sanitizeOptions) applyConfig(fs *pflag.FlagSet, cfg *config.Config) {
	if !fs.Changed("type") && cfg.Type != "" {
		o.kindName = cfg.Type
	}
	if !fs.Changed("lang") && len(cfg.Languages) > 0 {
		o.languages = cfg.Languages
	}
}

// kind parses the --type override. The bool reports whether an override
// was requested at all.
func (o *sanitizeOptions) kind() (detect.Kind, bool, error) {
	if o.kindName == "" {
		return "", false, nil
	}
	k, err := detect.ParseKind(o.kindName)
	if err != nil {
		return "", false, err
	}
	return k, true, nil
}

// loadConfig reads .scrub.yaml and env overrides from the working
// directory and honors its no_color default.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		disableColor()
	}
	return cfg, nil
}
