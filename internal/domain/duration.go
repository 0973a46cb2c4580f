package domain

import (
	"strconv"
	"strings"
)

// ParseDurationMinutes разбирает длительность услуги
// Берется ведущее целое число: "1h" -> 60, "30min" -> 30.
// Любой другой формат дает 0.
func ParseDurationMinutes(duration string) int {
	value, ok := leadingInt(strings.TrimSpace(duration))
	if !ok {
		return 0
	}

	switch {
	case strings.Contains(duration, "h"):
		return value * 60
	case strings.Contains(duration, "min"):
		return value
	default:
		return 0
	}
}

// leadingInt читает целое число в начале строки, как parseInt
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
