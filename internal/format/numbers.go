package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousand separators into a decimal string.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// TruncateDigits shortens a long digit string to its first and last edge
// digits. Strings of at most 2*edge digits are returned unchanged.
func TruncateDigits(s string, edge int) string {
	if edge <= 0 || len(s) <= 2*edge {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:edge], s[len(s)-edge:])
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
