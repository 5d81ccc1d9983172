// Package validation sanitizes caller-supplied strings before they are
// rendered into spreadsheet cells.
package validation

import (
	"strings"
	"unicode"
)

// SanitizeForFormulaInjection prepends a single quote when the string would
// otherwise be interpreted as a formula by spreadsheet software, so cell
// content stays text.
func SanitizeForFormulaInjection(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 0 {
		return s
	}
	switch trimmed[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// StripUnprintable removes non-printable characters, keeping common
// whitespace (space, tab, newline, carriage return).
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}
