// Copyright 2026 The Scrub Authors
// SPDX-License-Identifier: MIT

// Package redact strips credential values from strings before they appear
// in error messages or logs. Inputs handed to scrub often come straight
// from shell pipelines, so errors that echo arguments must not leak
// whatever tokens happen to be exported in the caller's environment.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must
// never appear in output.
var sensitiveEnvVars = []string{
	"SCRUB_TOKEN",
	"GITHUB_TOKEN",
	"GH_TOKEN",
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
	"AWS_SECRET_ACCESS_KEY",
	"DATABASE_URL",
}

var (
	replacerOnce sync.Once
	replacer     *strings.Replacer
)

// buildReplacer snapshots the current env values. Values shorter than 4
// characters are skipped to avoid false-positive replacement.
func buildReplacer() {
	var pairs []string
	for _, name := range sensitiveEnvVars {
		if val := os.Getenv(name); len(val) >= 4 {
			pairs = append(pairs, val, "[REDACTED]")
		}
	}
	replacer = strings.NewReplacer(pairs...)
}

// String replaces any occurrence of a known sensitive environment
// variable value with "[REDACTED]". The replacer is built once on first
// use.
func String(s string) string {
	replacerOnce.Do(buildReplacer)
	return replacer.Replace(s)
}

// ResetForTest discards the cached replacer so tests can change env vars
// between calls with t.Setenv.
func ResetForTest() {
	replacer = nil
	replacerOnce = sync.Once{}
}
