package icvm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseProgram reads comma separated integers.
func ParseProgram(r io.Reader) ([]int, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fields := strings.Split(string(content), ",")
	// tolerate a trailing comma or newline
	for len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	program := make([]int, 0, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		program = append(program, n)
	}
	return program, nil
}

func FormatProgram(program []int) string {
	var b strings.Builder
	for i, n := range program {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
