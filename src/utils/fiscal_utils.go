package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	fyShort = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	fyLong  = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
	fyYear  = regexp.MustCompile(`^\d{4}$`)
)

// NextFiscalYearLabel derives the label of the fiscal year after the given
// one. Recognised forms: "2024-25", "2024-2025" and "2024". Anything else
// returns ok=false and the caller picks its own fallback.
func NextFiscalYearLabel(label string) (string, bool) {
	if m := fyShort.FindStringSubmatch(label); m != nil {
		start, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d-%02d", start+1, (start+2)%100), true
	}
	if m := fyLong.FindStringSubmatch(label); m != nil {
		start, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d-%d", start+1, start+2), true
	}
	if fyYear.MatchString(label) {
		year, _ := strconv.Atoi(label)
		return strconv.Itoa(year + 1), true
	}
	return "", false
}
