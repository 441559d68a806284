package util

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	kb = 1024
	mb = 1024 * kb
	gb = 1024 * mb
)

// ParseSize parses a human-readable size such as "10MB", "512KB" or "2GB"
// into bytes. A bare number is bytes. Returns defaultBytes if s is empty,
// malformed or not positive.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier, s = gb, s[:len(s)-2]
	case strings.HasSuffix(s, "MB"):
		multiplier, s = mb, s[:len(s)-2]
	case strings.HasSuffix(s, "KB"):
		multiplier, s = kb, s[:len(s)-2]
	case strings.HasSuffix(s, "B"):
		s = s[:len(s)-1]
	}

	val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || val <= 0 {
		return defaultBytes
	}
	return val * multiplier
}

// FormatSize renders n bytes in the largest whole unit ParseSize accepts.
func FormatSize(n int64) string {
	switch {
	case n >= gb && n%gb == 0:
		return fmt.Sprintf("%dGB", n/gb)
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
