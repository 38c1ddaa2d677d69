package main

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var matchNewLinesAndSpaces = regexp.MustCompile(`[ \t\r\n]+`)

// previewCommand collapses the whitespace of a command line and cuts it at
// the last word boundary that fits into width runes.
func previewCommand(s string, width int) string {
	s = strings.TrimSpace(matchNewLinesAndSpaces.ReplaceAllString(s, " "))
	if utf8.RuneCountInString(s) <= width {
		return s
	}

	cut := string([]rune(s)[:width-3])
	idx := strings.LastIndex(cut, " ")
	if idx > 0 && utf8.RuneCountInString(cut[:idx]) > int(float64(width)*(2.0/3.0)) {
		return cut[:idx] + "..."
	}

	return cut + "..."
}
