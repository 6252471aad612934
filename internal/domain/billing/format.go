package billing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Jobs renders a unit count with the singular/plural rule used everywhere on
// the documents: "1 Job", "3 Jobs".
func Jobs(n int) string {
	if n == 1 {
		return "1 Job"
	}
	return strconv.Itoa(n) + " Jobs"
}

// FormatINR renders an amount with two decimal places and the INR suffix,
// e.g. "237.50 INR".
func FormatINR(d decimal.Decimal) string {
	return d.StringFixed(2) + " INR"
}

// DescriptionLines splits a comma-delimited description into trimmed bullet
// lines ("• clause"). Empty clauses are dropped.
func DescriptionLines(description string) []string {
	clauses := strings.Split(description, ",")
	lines := make([]string, 0, len(clauses))
	for _, c := range clauses {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		lines = append(lines, "• "+c)
	}
	return lines
}
