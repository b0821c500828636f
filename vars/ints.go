package vars

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts parses a comma separated list like "9,8,7,6,5".
func ParseInts(str string) ([]int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, nil
	}
	parts := strings.Split(str, ",")
	ret := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse int list %q: %w", str, err)
		}
		ret = append(ret, n)
	}
	return ret, nil
}
