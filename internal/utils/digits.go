package utils

import "strings"

// OnlyDigits strips everything that is not 0-9, preserving order.
// "123.456.789-00" becomes "12345678900". No length or check-digit
// validation happens here; the consumer only needs the raw digits.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
