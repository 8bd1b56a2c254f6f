package rio

import "strings"

// Lines splits text into lines at newline characters. The newline is not
// part of any line, and a trailing newline does not produce a final empty
// line. Empty input has no lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// LinesCR splits text into lines like Lines, then removes one trailing
// carriage return from each line if present, so CRLF and LF input produce
// the same result.
//
// Example:
//
//	rio.LinesCR("a\r\nb\nc\r\n") // ["a", "b", "c"]
func LinesCR(text string) []string {
	lines := Lines(text)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
