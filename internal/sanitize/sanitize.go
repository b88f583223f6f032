// Copyright 2026 The Scrub Authors
// SPDX-License-Identifier: MIT

// Package sanitize applies kind-specific transformations that remove or
// obscure sensitive content: masking for emails and phone numbers, query
// stripping for URLs, recursive rewriting for JSON documents and env
// blocks, and SQL+HTML escaping for plain text. Every function is a pure
// function of its input and safe for concurrent use.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/davetashner/scrub/internal/detect"
)

// Value detects the kind of input and sanitizes it accordingly, returning
// the detected kind and the sanitized string.
func Value(input string) (detect.Kind, string) {
	return ValueAs(input, detect.Type(input))
}

// ValueAs sanitizes input as the given kind, bypassing detection. The
// returned kind normally echoes the argument; JSON input that fails to
// parse degrades to Text with the raw input HTML-escaped.
func ValueAs(input string, kind detect.Kind) (detect.Kind, string) {
	switch kind {
	case detect.Email:
		return kind, MaskEmail(input)
	case detect.Phone:
		return kind, MaskPhone(input)
	case detect.URL:
		return kind, StripURLQuery(input)
	case detect.JSON:
		return sanitizeJSON(input)
	case detect.Env:
		return kind, sanitizeEnv(input)
	}
	return detect.Text, EscapeHTML(EscapeSQL(input))
}

// sanitizeJSON walks the document and rewrites every string leaf through
// Value, so a leaf that itself looks like an email, URL, or nested JSON
// document is sanitized by its own rules. Object key order, array order,
// and the raw tokens of numbers, booleans, and null are preserved.
func sanitizeJSON(input string) (detect.Kind, string) {
	v := strings.TrimSpace(input)
	if !gjson.Valid(v) {
		return detect.Text, EscapeHTML(input)
	}
	var b strings.Builder
	b.Grow(len(v))
	writeSanitized(&b, gjson.Parse(v))
	return detect.JSON, b.String()
}

func writeSanitized(b *strings.Builder, v gjson.Result) {
	switch {
	case v.IsObject():
		b.WriteByte('{')
		first := true
		v.ForEach(func(key, val gjson.Result) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			writeJSONString(b, key.String())
			b.WriteByte(':')
			writeSanitized(b, val)
			return true
		})
		b.WriteByte('}')
	case v.IsArray():
		b.WriteByte('[')
		first := true
		v.ForEach(func(_, val gjson.Result) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			writeSanitized(b, val)
			return true
		})
		b.WriteByte(']')
	case v.Type == gjson.String:
		_, sanitized := Value(v.String())
		writeJSONString(b, sanitized)
	default:
		// Numbers, booleans, null: emit the original token untouched.
		b.WriteString(v.Raw)
	}
}

// writeJSONString encodes s as a JSON string without escaping HTML
// characters, so Unicode and entities survive sanitization verbatim.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// sanitizeEnv rewrites a block of KEY=VALUE lines. Blank lines, comment
// lines, and lines without "=" are preserved verbatim. Keys are never
// altered; each value is trimmed, independently detected, and sanitized
// by its own kind's rules.
func sanitizeEnv(input string) string {
	lines := strings.Split(input, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(line, "=") {
			out = append(out, line)
			continue
		}
		key, val, _ := strings.Cut(line, "=")
		_, sanitized := Value(strings.TrimSpace(val))
		out = append(out, key+"="+sanitized)
	}
	return strings.Join(out, "\n")
}
