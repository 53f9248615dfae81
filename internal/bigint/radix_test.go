package bigint

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"000123", "123"},
		{"+42", "42"},
		{"-1234567890123456789012345678901234567890", "-1234567890123456789012345678901234567890"},
		{"0x1F", "31"},
		{"0XfF", "255"},
		{"-0xff", "-255"},
		{"0o17", "15"},
		{"0b101", "5"},
		{"-0B11", "-3"},
		{"1.5e3", "1500"},
		{"-12.7", "-12"},
		{"1e-2", "0"},
		{"12e2", "1200"},
		{"1.23456e2", "123"},
		{"1E+3", "1000"},
		{".5", "0"},
		{"5.", "5"},
		{"-0.9", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
			assertCanonical(t, tt.in, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"", "-", "+", "0x", "-0b", "12a", "1.2.3", "1e", "e5", ".", "0xg",
		"0b102", "1e9999999", " 1", "1 ", "--1", "+-1", "1_000", "1e2.5",
	}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			t.Parallel()
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", in)
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Parse(%q) error %v does not match ErrFormat", in, err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) || fe.Input != in {
				t.Errorf("Parse(%q) error %v is not a *FormatError for the input", in, err)
			}
		})
	}
}

func TestParseRadix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in    string
		radix int
		want  string
	}{
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"zz", 36, "1295"},
		{"ZZ", 36, "1295"},
		{"-101", 2, "-5"},
		{"+777", 8, "511"},
		{"0", 7, "0"},
		{"10000000000000000000000000", 16, "1267650600228229401496703205376"},
	}
	for _, tt := range tests {
		got, err := ParseRadix(tt.in, tt.radix)
		if err != nil {
			t.Errorf("ParseRadix(%q, %d) error: %v", tt.in, tt.radix, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseRadix(%q, %d) = %s, want %s", tt.in, tt.radix, got, tt.want)
		}
	}
}

func TestParseRadixErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in    string
		radix int
	}{
		{"12", 1},
		{"12", 37},
		{"2", 2},
		{"", 10},
		{"-", 10},
		{"0x10", 16},
		{"9", 8},
	}
	for _, tt := range tests {
		if _, err := ParseRadix(tt.in, tt.radix); !errors.Is(err, ErrFormat) {
			t.Errorf("ParseRadix(%q, %d) error = %v, want ErrFormat", tt.in, tt.radix, err)
		}
	}
}

// TestRadixScenario covers parsing "ff" in radix 16 and printing it back in
// radix 16 and 10.
func TestRadixScenario(t *testing.T) {
	t.Parallel()

	v, err := ParseRadix("ff", 16)
	if err != nil {
		t.Fatalf("ParseRadix: %v", err)
	}
	if s, _ := v.Text(16); s != "ff" {
		t.Errorf("Text(16) = %q, want %q", s, "ff")
	}
	if s, _ := v.Text(10); s != "255" {
		t.Errorf("Text(10) = %q, want %q", s, "255")
	}
}

func TestTextMatchesMathBig(t *testing.T) {
	t.Parallel()
	r := newTestRand(t)

	for i := 0; i < 200; i++ {
		x := randomInt(r, 20)
		for radix := MinRadix; radix <= MaxRadix; radix++ {
			got, err := x.Text(radix)
			if err != nil {
				t.Fatalf("Text(%d): %v", radix, err)
			}
			if want := x.Big().Text(radix); got != want {
				t.Fatalf("Text(%d) of %s = %q, want %q", radix, x, got, want)
			}
		}
	}
}

func TestTextZeroAndPadding(t *testing.T) {
	t.Parallel()

	if s, _ := Zero().Text(2); s != "0" {
		t.Errorf("Zero().Text(2) = %q, want \"0\"", s)
	}
	// 10^9 spans two decimal chunks; the lower chunk must be zero-padded.
	v := MustParse("1000000000000000001")
	if got := v.String(); got != "1000000000000000001" {
		t.Errorf("String() = %q, want 1000000000000000001", got)
	}
	if _, err := v.Text(1); !errors.Is(err, ErrFormat) {
		t.Errorf("Text(1) error = %v, want ErrFormat", err)
	}
	_, err := v.Text(37)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Text(37) error = %v, want ErrFormat", err)
	}
	if err != nil && (strings.Contains(err.Error(), "parse") || !strings.Contains(err.Error(), "radix 37")) {
		t.Errorf("Text(37) error = %q, want a message naming radix 37 only", err)
	}
}

func TestParseMatchesMathBig(t *testing.T) {
	t.Parallel()
	r := newTestRand(t)

	for i := 0; i < 200; i++ {
		want := randomInt(r, 20).Big()
		for _, radix := range []int{2, 3, 8, 10, 16, 36} {
			got, err := ParseRadix(want.Text(radix), radix)
			if err != nil {
				t.Fatalf("ParseRadix(%q, %d): %v", want.Text(radix), radix, err)
			}
			assertBig(t, fmt.Sprintf("ParseRadix(radix %d)", radix), got, want)
		}
	}
}

func TestFormatVerbs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format string
		v      Int
		want   string
	}{
		{"%d", NewInt(-5), "-5"},
		{"%v", NewInt(1234), "1234"},
		{"%s", NewInt(1234), "1234"},
		{"%x", NewInt(255), "ff"},
		{"%X", NewInt(255), "FF"},
		{"%#x", NewInt(255), "0xff"},
		{"%#X", NewInt(-255), "-0XFF"},
		{"%b", NewInt(5), "101"},
		{"%#o", NewInt(8), "0o10"},
		{"%+d", NewInt(7), "+7"},
		{"%6d", NewInt(-42), "   -42"},
		{"%-6d|", NewInt(42), "42    |"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.v); got != tt.want {
			t.Errorf("Sprintf(%q, %s) = %q, want %q", tt.format, tt.v, got, tt.want)
		}
	}
	if got := fmt.Sprintf("%q", NewInt(1)); !strings.HasPrefix(got, "%!q") {
		t.Errorf("unsupported verb produced %q", got)
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	type payload struct {
		N Int `json:"n"`
	}
	in := payload{N: MustParse("-98765432109876543210")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"n":"-98765432109876543210"}` {
		t.Errorf("Marshal = %s", data)
	}
	var out payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.N.Equal(in.N) {
		t.Errorf("round trip = %s, want %s", out.N, in.N)
	}
	if err := json.Unmarshal([]byte(`{"n":"12x"}`), &out); !errors.Is(err, ErrFormat) {
		t.Errorf("Unmarshal of bad text error = %v, want ErrFormat", err)
	}
}

func TestChunkTable(t *testing.T) {
	t.Parallel()
	for r := MinRadix; r <= MaxRadix; r++ {
		base := new(big.Int).Exp(big.NewInt(int64(r)), big.NewInt(int64(chunkDigits[r])), nil)
		if base.Uint64() != chunkBase[r] {
			t.Errorf("radix %d: chunkBase %d != %d^%d", r, chunkBase[r], r, chunkDigits[r])
		}
		if chunkBase[r] >= chunkLimit || chunkBase[r]*uint64(r) < chunkLimit {
			t.Errorf("radix %d: chunkBase %d is not the largest power below 2^30", r, chunkBase[r])
		}
	}
}
