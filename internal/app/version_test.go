package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"-e", "add 1 2"}, false},
		{[]string{"--version"}, true},
		{[]string{"-q", "-V"}, true},
		{[]string{"-version"}, true},
		{[]string{"-e", "version"}, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%q) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	for _, want := range []string{"bigcalc " + Version, "Commit:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("version output lacks %q:\n%s", want, buf.String())
		}
	}
}
