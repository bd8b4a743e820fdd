// Package textwidth measures the monospace column width of strings that
// may mix ASCII with CJK text or carry ANSI color codes. CJK characters
// occupy two columns; widths are derived from the string's GBK encoding,
// where every double-width character encodes to two bytes.
package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var ansiCodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Width returns the column width of a single line. ANSI color sequences
// contribute nothing.
func Width(line string) int {
	clean := ansiCodes.ReplaceAllString(line, "")
	if clean == "" {
		return 0
	}
	if encoded, _, err := transform.String(simplifiedchinese.GBK.NewEncoder(), clean); err == nil {
		return len(encoded)
	}
	// Characters GBK cannot encode: assume double width for anything
	// beyond ASCII.
	w := 0
	for _, r := range clean {
		switch {
		case r == '\n' || r == '\r':
		case r <= unicode.MaxASCII:
			w++
		default:
			w += 2
		}
	}
	return w
}

// Widest returns the width of the widest line in s.
func Widest(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

// PadRight appends spaces until s renders at the target width.
func PadRight(s string, width int) string {
	if diff := width - Width(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}

// PadLeft prepends spaces until s renders at the target width.
func PadLeft(s string, width int) string {
	if diff := width - Width(s); diff > 0 {
		return strings.Repeat(" ", diff) + s
	}
	return s
}

// Center pads s on both sides to the target width, favoring the right side
// when the leftover space is odd.
func Center(s string, width int) string {
	diff := width - Width(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}
