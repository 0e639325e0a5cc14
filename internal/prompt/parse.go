package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts parses a comma separated list such as "1, 2". Empty items are
// skipped; any other non-integer item is an error.
func ParseInts(text string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid number", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// SplitList splits text on sep and drops blank items, trimming the rest.
func SplitList(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
