package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1234567 as
// "1,234,567".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatNumberString inserts thousands separators into a decimal digit
// string of any length, keeping a leading minus sign.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateDigits shortens a rendered value longer than limit characters to
// its first and last keep digits around an ellipsis and the digit count.
// A limit of zero or less disables truncation.
func TruncateDigits(s string, limit, keep int) string {
	body := strings.TrimPrefix(s, "-")
	if limit <= 0 || len(body) <= limit || 2*keep >= len(body) {
		return s
	}
	sign := s[:len(s)-len(body)]
	return fmt.Sprintf("%s%s...%s (%s digits)", sign, body[:keep], body[len(body)-keep:], FormatCount(len(body)))
}
