// Copyright 2026 The Scrub Authors
// SPDX-License-Identifier: MIT

// Package literal renders strings as source-code string literals for a
// handful of target languages, so sanitized values can be pasted directly
// into code. Unknown language names fall back to the Python
// representation.
package literal

import (
	"fmt"
	"strings"
)

type escapeFunc func(string) string

// escapers maps lower-case language names to their escaping style. The
// table is read-only after init; lookups are safe for concurrent use.
var escapers = map[string]escapeFunc{
	"python":     pythonRepr,
	"javascript": jsLiteral,
	"js":         jsLiteral,
	"java":       javaLiteral,
	"go":         cLiteral,
	"c":          cLiteral,
	"csharp":     cLiteral,
	"cs":         cLiteral,
	"php":        cLiteral,
	"ruby":       cLiteral,
	"rust":       cLiteral,
	"swift":      cLiteral,
	"bash":       bashLiteral,
}

// Escape returns a literal for s that is safe to paste into source code
// of the named language. Matching is case-insensitive; unrecognized names
// degrade to the Python representation rather than erroring.
func Escape(s, language string) string {
	if fn, ok := escapers[strings.ToLower(language)]; ok {
		return fn(s)
	}
	return pythonRepr(s)
}

// pythonRepr mimics Python's repr for strings: single quotes unless the
// string contains a single quote but no double quote, backslashes and the
// chosen quote escaped, common control characters as \n \r \t, and the
// rest of the control range as \xNN.
func pythonRepr(s string) string {
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// jsLiteral double-quotes with backslash and quote escaping only.
// Newlines pass through unescaped; callers targeting strict JS parsers
// should prefer the java style.
func jsLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// javaLiteral is the C style plus carriage-return escaping.
func javaLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return `"` + s + `"`
}

// cLiteral double-quotes with backslash, quote, and newline escaping.
// Used for C, Go, C#, PHP, Ruby, Rust, and Swift.
func cLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

// bashLiteral single-quotes the string. An embedded single quote closes
// the literal, splices an escaped quote, and reopens: ' -> '\''.
func bashLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
