package bond

import (
	"strconv"
	"strings"
)

// ParseTerm parses a maturity such as "9.4 years" into years.
// Only the token before the first space is read.
func ParseTerm(raw string) (float64, error) {
	token, _, _ := strings.Cut(raw, " ")

	return strconv.ParseFloat(strings.TrimSpace(token), 64)
}

// ParseYield parses a percentage such as "3.70%" into 3.70.
func ParseYield(raw string) (float64, error) {
	value := strings.TrimSuffix(strings.TrimSpace(raw), "%")

	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}
