package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/operations"
)

func newTestREPL(input string) (*REPL, *bytes.Buffer) {
	env := operations.DefaultEnv()
	env.Oracle = bigint.NewOracle(bigint.WithSeed(7))
	ev := operations.NewEvaluator(nil, operations.WithEnv(env), operations.WithTimeout(time.Second))
	r := NewREPL(ev, REPLConfig{Timeout: time.Second, Version: "v0.0.0-test"})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPLSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{"banner and EOF", "", []string{"bigcalc interactive mode", "v0.0.0-test", "Goodbye!"}, nil},
		{"evaluate", "add 1 2 3\n", []string{"add 1 2 3 = 6"}, nil},
		{"last line without newline", "mul 6 7", []string{"mul 6 7 = 42"}, nil},
		{"comments and blanks", "# note\n\n   \nsub 1 2\n", []string{"sub 1 2 = -1"}, []string{"note ="}},
		{"radix", "radix 16\npow 2 8\n", []string{"Output radix set to 16", "pow 2 8 = 100"}, nil},
		{"bad radix", "radix 40\nradix\n", []string{"Invalid radix: 40", "Usage: radix <n>"}, nil},
		{"full toggle", "full\n", []string{"displayed full"}, nil},
		{"help", "help\n", []string{"Available commands:", "radix <n>"}, nil},
		{"operation help", "help modpow\nhelp nope\n", []string{"modpow X E M - X^E mod M", "Unknown operation: nope"}, nil},
		{"aliases in help", "help add\n", []string{"aliases: plus, +"}, nil},
		{"list", "list\n", []string{"Available operations:", "divrem X Y", "randprime BITS"}, nil},
		{"status", "add 1 1\nstatus\n", []string{"Session", "Radix", "Evaluated", "Heap", "System CPU", "System memory"}, nil},
		{"unknown operation", "frobnicate 1\n", []string{"✗ frobnicate 1", "Type help"}, nil},
		{"evaluation error", "div 1 0\n", []string{"✗ div 1 0", "division by zero"}, []string{"Type help"}},
		{"exit stops reading", "exit\nadd 1 1\n", []string{"Goodbye!"}, []string{"add 1 1 ="}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, out := newTestREPL(tt.input)
			r.Start(context.Background())
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output lacks %q:\n%s", want, out.String())
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(out.String(), bad) {
					t.Errorf("output unexpectedly contains %q:\n%s", bad, out.String())
				}
			}
		})
	}
}

func TestREPLCanceledContext(t *testing.T) {
	t.Parallel()
	r, out := newTestREPL("add 1 1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.Start(ctx)
	if !strings.Contains(out.String(), "Interrupted.") {
		t.Errorf("output = %q", out.String())
	}
	if strings.Contains(out.String(), "add 1 1 =") {
		t.Error("a canceled session should not evaluate")
	}
}
