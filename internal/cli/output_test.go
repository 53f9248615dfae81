package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/operations"
)

func sampleResults() []operations.Result {
	return []operations.Result{
		{Expr: "add 2 3", Op: "add", Values: []bigint.Int{bigint.NewInt(5)}},
		{Expr: "extgcd 240 46", Op: "extgcd", Values: []bigint.Int{bigint.NewInt(-9), bigint.NewInt(47), bigint.NewInt(2)}},
		{Expr: "isprime 9", Op: "isprime", Verdict: "composite"},
		{Expr: "div 1 0", Op: "div", Err: errors.New("div: bigint: division by zero")},
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()
	want := []string{"5", "-9 47 2", "composite", "error: div: bigint: division by zero"}
	for i, res := range sampleResults() {
		if got := FormatQuietResult(res, 10); got != want[i] {
			t.Errorf("FormatQuietResult(%q) = %q, want %q", res.Expr, got, want[i])
		}
	}
	res := operations.Result{Values: []bigint.Int{bigint.NewInt(255)}}
	if got := FormatQuietResult(res, 16); got != "ff" {
		t.Errorf("radix 16 = %q, want ff", got)
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, sampleResults()[0], 10)
	if buf.String() != "5\n" {
		t.Errorf("DisplayQuietResult wrote %q", buf.String())
	}
}

func TestWriteResultsToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.txt")

	if err := WriteResultsToFile(path, sampleResults(), 10); err != nil {
		t.Fatalf("WriteResultsToFile: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading results: %v", err)
	}
	text := string(content)
	for _, want := range []string{
		"# bigcalc results", "# Radix: 10", "# Expressions: 4",
		"add 2 3 = 5\n", "extgcd 240 46 = -9 47 2\n", "isprime 9 = composite\n",
		"div 1 0 = error: div: bigint: division by zero\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("file lacks %q:\n%s", want, text)
		}
	}
}

func TestWriteResultsToFileErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteResultsToFile(filepath.Join(blocker, "out.txt"), sampleResults(), 10); err == nil {
		t.Error("writing below a regular file should fail")
	}
}

func TestDisplaySavedNotice(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplaySavedNotice(&buf, "out.txt")
	if !strings.Contains(buf.String(), "Results saved to: out.txt") {
		t.Errorf("notice = %q", buf.String())
	}
}
