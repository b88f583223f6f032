// Copyright 2026 The Scrub Authors
// SPDX-License-Identifier: MIT

// Package config loads CLI defaults from a .scrub.yaml file and SCRUB_*
// environment variables. Precedence is flags > env > file; the merge with
// flags happens at the command boundary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".scrub.yaml"

// Config holds defaults for the sanitize commands.
type Config struct {
	// Languages to emit escaped literals for when --lang is not given.
	Languages []string `yaml:"languages,omitempty" env:"SCRUB_LANGUAGES"`
	// Type overrides detection when --type is not given. Validated at
	// the command boundary, not here.
	Type string `yaml:"type,omitempty" env:"SCRUB_TYPE"`
	// NoColor disables colored output.
	NoColor bool `yaml:"no_color,omitempty" env:"SCRUB_NO_COLOR"`
}

// Load reads FileName from dir, then applies SCRUB_* env overrides on
// top. A missing file is not an error: it returns the env-only config.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(dir, FileName)) //nolint:gosec // user-provided dir
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file; env vars and flags still apply.
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", FileName, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
