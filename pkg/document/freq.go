package document

import (
	"fmt"
	"strconv"
)

// formatMHz renders a frequency as the document's canonical decimal MHz
// string with six fraction digits (e.g. "438.500000").
func formatMHz(mhz float64) string {
	return fmt.Sprintf("%.6f", mhz)
}

// parseMHz parses a decimal MHz string back into its float64 value.
func parseMHz(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("document: invalid frequency %q: %w", s, err)
	}
	return v, nil
}
