package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/c9s/easymeasure"
)

// descMeasurement prints out the measurement progress in a fancy format
func descMeasurement(w io.Writer, action, key string, v *easymeasure.Value) {
	char := "▶"
	colors := text.Colors{text.FgBlack, text.BgHiCyan}
	switch action {
	case "done":
		char = "✔"
		colors = text.Colors{text.FgBlack, text.BgHiGreen}
	case "failed":
		char = "✘"
		colors = text.Colors{text.FgBlack, text.BgHiRed}
	}

	line := fmt.Sprintf("%2s %-8s >> %-40s", strings.Repeat(char, 2), strings.ToUpper(action), key)
	if v != nil {
		line += fmt.Sprintf(" (%s / %s)", easymeasure.FormatSeconds(v.Elapsed), easymeasure.FormatBytes(v.MemoryDelta))
	}

	fmt.Fprint(w, colors.Sprint(line))
	fmt.Fprint(w, "\n")
}
