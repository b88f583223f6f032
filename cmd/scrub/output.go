package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/davetashner/scrub/internal/detect"
	"github.com/davetashner/scrub/internal/literal"
)

// colorComment renders the "# ..." metadata lines dimmed so the sanitized
// payload stands out. fatih/color already downgrades to plain text when
// stdout is not a terminal.
var colorComment = color.New(color.Faint)

func disableColor() {
	color.NoColor = true
}

// printResult writes the detection header, the sanitized value, and any
// requested language literals to w. Literals are rendered from the
// sanitized value, never the raw input.
func printResult(w io.Writer, kind detect.Kind, sanitized string, languages []string) {
	fmt.Fprintln(w, colorComment.Sprintf("# detected: %s", kind))
	fmt.Fprintln(w, sanitized)

	if len(languages) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorComment.Sprint("# language literals:"))
	for _, lang := range languages {
		fmt.Fprintf(w, "%s: %s\n", lang, literal.Escape(sanitized, lang))
	}
}
