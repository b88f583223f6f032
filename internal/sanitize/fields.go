// Copyright 2026 The Scrub Authors
// SPDX-License-Identifier: MIT

package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/davetashner/scrub/internal/detect"
)

// urlQueryPattern captures a URL up to its query string. The trailing .*
// does not cross line boundaries, so only the first URL on each line is
// affected.
var urlQueryPattern = regexp.MustCompile(`(https?://[^\s?]+)\?.*`)

// htmlReplacer escapes the characters that are dangerous when injected
// into HTML. A single-pass replacer never rescans its own output, so the
// entities it introduces are not escaped again.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// MaskEmail masks the first email-shaped substring in s while keeping it
// recognizable: "alice@example.com" becomes "a***e@e*****e.c*m". The local
// part and each domain label are masked independently. Strings without an
// email pass through unchanged.
func MaskEmail(s string) string {
	m := detect.EmailPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	at := strings.LastIndex(m[0], "@")
	local, domain := m[0][:at], m[0][at+1:]

	labels := strings.Split(domain, ".")
	for i, label := range labels {
		labels[i] = maskPart(label)
	}
	return maskPart(local) + "@" + strings.Join(labels, ".")
}

// maskPart obscures the middle of a name: one char keeps the char plus a
// star, two chars keep the first, three or more keep first and last.
func maskPart(s string) string {
	r := []rune(s)
	switch n := len(r); {
	case n == 0:
		return ""
	case n == 1:
		return string(r) + "*"
	case n == 2:
		return string(r[0]) + "*"
	default:
		return string(r[0]) + strings.Repeat("*", n-2) + string(r[n-1])
	}
}

// MaskPhone hides all digits of a phone number except the last two,
// leaving delimiters such as +, -, parentheses, and spaces in their
// original positions: "+1 (555) 123-4567" becomes "+* (***) ***-**67".
// Fewer than four digits masks everything and drops the delimiters.
func MaskPhone(s string) string {
	var digits []rune
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	const keep = 2
	masked := digits
	for i := 0; i < len(masked)-keep; i++ {
		masked[i] = '*'
	}

	out := make([]rune, 0, len(s))
	next := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, masked[next])
			next++
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// StripURLQuery removes the query string (and everything after it) from
// URLs in s, discarding tokens and tracking parameters. Strings without a
// "?" directly after a URL pass through unchanged.
func StripURLQuery(s string) string {
	return urlQueryPattern.ReplaceAllString(s, "${1}")
}

// EscapeSQL doubles single quotes. This is display-grade escaping, not a
// defense for executing untrusted queries.
func EscapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// EscapeHTML escapes &, <, >, double and single quotes. The entity for
// single quote is &#x27;, which differs from the stdlib html package.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}
