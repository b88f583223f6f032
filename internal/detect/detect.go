// Copyright 2026 The Scrub Authors
// SPDX-License-Identifier: MIT

// Package detect classifies input strings into a small set of semantic
// kinds: email addresses, phone numbers, URLs, JSON documents, env-style
// KEY=VALUE blocks, and plain text. Recognition is heuristic and
// best-effort, not RFC-exact validation.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the detected semantic type of an input string.
type Kind string

// The six kinds. Text is the catch-all for anything that matches no
// other shape.
const (
	Email Kind = "email"
	Phone Kind = "phone"
	URL   Kind = "url"
	JSON  Kind = "json"
	Env   Kind = "env"
	Text  Kind = "text"
)

// Kinds returns every Kind, in detection priority order.
func Kinds() []Kind {
	return []Kind{JSON, Env, Email, Phone, URL, Text}
}

// ParseKind converts a user-facing kind name to a Kind. Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Email, Phone, URL, JSON, Env, Text:
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q (want email|phone|url|json|env|text)", s)
}

// Conservative shape recognizers. The anchored variants require the whole
// trimmed input to match and are what detection uses; the unanchored email
// pattern is shared with the masking code, which searches substrings.
var (
	// EmailPattern matches an email-shaped substring: a local part with no
	// whitespace or @, then @, then a domain containing at least one dot.
	EmailPattern = regexp.MustCompile(`[^@\s]+@[^\s@]+\.[^\s@]+`)

	emailExact = regexp.MustCompile(`^[^@\s]+@[^\s@]+\.[^\s@]+$`)
	phoneExact = regexp.MustCompile(`^\+?\d[\d\-() ]{6,}\d$`)
	urlExact   = regexp.MustCompile(`^https?://\S+$`)
)

// Type classifies s as one of the six Kinds. The checks run in a fixed
// priority order; overlapping shapes (a JSON array of digits also looks
// like a phone number) resolve to the earlier kind. Malformed JSON is not
// an error: a brace-wrapped string that fails to parse falls through to
// the remaining checks.
func Type(s string) Kind {
	v := strings.TrimSpace(s)

	if (strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}")) ||
		(strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]")) {
		if gjson.Valid(v) {
			return JSON
		}
	}

	if strings.Contains(v, "=") && isEnvBlock(v) {
		return Env
	}

	switch {
	case emailExact.MatchString(v):
		return Email
	case phoneExact.MatchString(v):
		return Phone
	case urlExact.MatchString(v):
		return URL
	}
	return Text
}

// isEnvBlock reports whether every non-blank, non-comment line of v
// contains an "=". At least one such line must exist.
func isEnvBlock(v string) bool {
	any := false
	for _, line := range strings.Split(v, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !strings.Contains(line, "=") {
			return false
		}
		any = true
	}
	return any
}
