package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinRadix and MaxRadix bound the radixes accepted by ParseRadix and Text.
	MinRadix = 2
	MaxRadix = 36

	// chunkLimit bounds the value of one chunk of digits so that a chunk
	// multiplied by a full word still fits comfortably in a uint64.
	chunkLimit = 1 << 30

	// maxExponent bounds the decimal exponent accepted by Parse.
	maxExponent = 1_000_000

	digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// chunkDigits[r] is the number of radix-r digits folded into one chunk and
// chunkBase[r] is r^chunkDigits[r], the largest such power below chunkLimit.
var (
	chunkDigits [MaxRadix + 1]int
	chunkBase   [MaxRadix + 1]uint64
)

func init() {
	for r := MinRadix; r <= MaxRadix; r++ {
		k, b := 0, uint64(1)
		for b*uint64(r) < chunkLimit {
			b *= uint64(r)
			k++
		}
		chunkDigits[r], chunkBase[r] = k, b
	}
}

func validRadix(radix int) bool { return radix >= MinRadix && radix <= MaxRadix }

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return MaxRadix
}

// Parse converts s to an Int.
//
// Accepted forms, each with an optional leading '+' or '-':
//   - a 0x, 0o or 0b prefix (any case) followed by hexadecimal, octal or
//     binary digits
//   - a decimal literal, optionally with a decimal point and an e/E exponent;
//     the point is shifted by the exponent and any remaining fraction is
//     truncated, so "1.5e3" is 1500 and "-12.7" is -12
//
// Malformed input returns a *FormatError.
func Parse(s string) (Int, error) {
	neg, body := splitSign(s)
	if body == "" {
		return Int{}, formatError(s, 0, "no digits")
	}
	if len(body) >= 2 && body[0] == '0' {
		radix := 0
		switch body[1] {
		case 'x', 'X':
			radix = 16
		case 'o', 'O':
			radix = 8
		case 'b', 'B':
			radix = 2
		}
		if radix != 0 {
			mag, err := parseDigits(body[2:], radix)
			if err != nil {
				return Int{}, formatError(s, radix, err.Error())
			}
			return makeInt(neg, mag), nil
		}
	}

	digits, err := normalizeDecimal(body)
	if err != nil {
		return Int{}, formatError(s, 10, err.Error())
	}
	mag, err := parseDigits(digits, 10)
	if err != nil {
		return Int{}, formatError(s, 10, err.Error())
	}
	return makeInt(neg, mag), nil
}

// ParseRadix converts digits written in the given radix (2 through 36) to an
// Int. An optional leading sign is accepted; prefixes are not.
func ParseRadix(s string, radix int) (Int, error) {
	if !validRadix(radix) {
		return Int{}, formatError(s, radix, "radix out of range")
	}
	neg, body := splitSign(s)
	mag, err := parseDigits(body, radix)
	if err != nil {
		return Int{}, formatError(s, radix, err.Error())
	}
	return makeInt(neg, mag), nil
}

func splitSign(s string) (neg bool, body string) {
	if s == "" {
		return false, s
	}
	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	}
	return false, s
}

// normalizeDecimal rewrites a decimal literal with an optional point and
// exponent as a plain unsigned digit string.
func normalizeDecimal(s string) (string, error) {
	mantissa, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return "", fmt.Errorf("malformed exponent %q", s[i+1:])
		}
		if e > maxExponent || e < -maxExponent {
			return "", fmt.Errorf("exponent %d out of range", e)
		}
		exp = e
	}

	intPart, fracPart, hasPoint := strings.Cut(mantissa, ".")
	if intPart == "" && fracPart == "" {
		return "", fmt.Errorf("no digits")
	}
	if hasPoint && strings.Contains(fracPart, ".") {
		return "", fmt.Errorf("more than one decimal point")
	}
	if exp == 0 && !hasPoint {
		return intPart, nil
	}
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return "", fmt.Errorf("invalid digit %q", part[i])
			}
		}
	}

	digits := intPart + fracPart
	point := len(intPart) + exp
	switch {
	case point <= 0:
		return "0", nil
	case point >= len(digits):
		return digits + strings.Repeat("0", point-len(digits)), nil
	}
	return digits[:point], nil
}

// parseDigits converts an unsigned digit string to a magnitude.
//
// Digits are first folded into chunks of chunkDigits[radix] digits, most
// significant chunk first. The chunk array is then divided by 2^16 until it
// is exhausted; each remainder is the next word of the result, least
// significant first.
func parseDigits(s string, radix int) (nat, error) {
	if s == "" {
		return nil, fmt.Errorf("no digits")
	}
	k, base := chunkDigits[radix], chunkBase[radix]

	head := len(s) % k
	if head == 0 {
		head = k
	}
	chunks := make([]uint64, 0, len(s)/k+1)
	for start, end := 0, head; start < len(s); start, end = end, end+k {
		var c uint64
		for i := start; i < end; i++ {
			d := digitValue(s[i])
			if d >= radix {
				return nil, fmt.Errorf("invalid digit %q", s[i])
			}
			c = c*uint64(radix) + uint64(d)
		}
		chunks = append(chunks, c)
	}

	var z nat
	for {
		for len(chunks) > 0 && chunks[0] == 0 {
			chunks = chunks[1:]
		}
		if len(chunks) == 0 {
			break
		}
		var rem uint64
		for i, c := range chunks {
			cur := rem*base + c
			chunks[i] = cur >> wordBits
			rem = cur & wordMask
		}
		z = append(z, word(rem))
	}
	return z.norm(), nil
}

// formatDigits converts a magnitude to an unsigned digit string.
//
// The words are folded most significant first into a little-endian
// accumulator in base chunkBase[radix] by repeated multiply-by-2^16-and-add.
// Every chunk except the most significant is then zero-padded to
// chunkDigits[radix] digits.
func formatDigits(x nat, radix int) string {
	if len(x) == 0 {
		return "0"
	}
	k, base := chunkDigits[radix], chunkBase[radix]

	acc := make([]uint64, 0, len(x)*wordBits/k+1)
	for i := len(x) - 1; i >= 0; i-- {
		carry := uint64(x[i])
		for j := range acc {
			cur := acc[j]<<wordBits + carry
			acc[j] = cur % base
			carry = cur / base
		}
		for carry != 0 {
			acc = append(acc, carry%base)
			carry /= base
		}
	}

	var sb strings.Builder
	sb.Grow(len(acc) * k)
	top := len(acc) - 1
	sb.WriteString(strconv.FormatUint(acc[top], radix))
	buf := make([]byte, k)
	for j := top - 1; j >= 0; j-- {
		c := acc[j]
		for i := k - 1; i >= 0; i-- {
			buf[i] = digitChars[c%uint64(radix)]
			c /= uint64(radix)
		}
		sb.Write(buf)
	}
	return sb.String()
}

// Text returns x in the given radix (2 through 36) using lowercase digits.
// Negative values carry a leading '-'; zero is "0".
func (x Int) Text(radix int) (string, error) {
	if !validRadix(radix) {
		return "", fmt.Errorf("%w: radix %d outside [%d, %d]", ErrFormat, radix, MinRadix, MaxRadix)
	}
	return x.text(radix), nil
}

func (x Int) text(radix int) string {
	s := formatDigits(x.mag, radix)
	if x.sign < 0 {
		return "-" + s
	}
	return s
}

// String returns the decimal representation of x.
func (x Int) String() string { return x.text(10) }

// Format implements fmt.Formatter for the verbs b, o, d, x, X, s and v.
// The '#' flag adds a 0b, 0o or 0x prefix.
func (x Int) Format(s fmt.State, verb rune) {
	radix, prefix := 10, ""
	switch verb {
	case 'b':
		radix, prefix = 2, "0b"
	case 'o':
		radix, prefix = 8, "0o"
	case 'x', 'X':
		radix, prefix = 16, "0x"
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}
	digits := formatDigits(x.mag, radix)
	if verb == 'X' {
		digits = strings.ToUpper(digits)
		prefix = "0X"
	}
	var sb strings.Builder
	if x.sign < 0 {
		sb.WriteByte('-')
	} else if s.Flag('+') {
		sb.WriteByte('+')
	}
	if s.Flag('#') {
		sb.WriteString(prefix)
	}
	sb.WriteString(digits)
	out := sb.String()
	if w, ok := s.Width(); ok && len(out) < w {
		pad := strings.Repeat(" ", w-len(out))
		if s.Flag('-') {
			out += pad
		} else {
			out = pad + out
		}
	}
	fmt.Fprint(s, out)
}

// MarshalText implements encoding.TextMarshaler using decimal text.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any form
// accepted by Parse and replaces *x wholesale.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
