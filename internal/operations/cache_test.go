package operations

import (
	"testing"

	"github.com/agbru/bigcalc/internal/bigint"
)

func TestMemoCacheEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	c := newMemoCache(2)
	out := func(v int64) Output { return Output{Values: []bigint.Int{bigint.NewInt(v)}} }

	c.put("add 1 1", out(2))
	c.put("add 1 2", out(3))
	if _, ok := c.get("add 1 1"); !ok {
		t.Fatal("entry missing before eviction")
	}
	c.put("add 1 3", out(4))

	if _, ok := c.get("add 1 2"); ok {
		t.Error("least recently used entry survived")
	}
	if got, ok := c.get("add 1 1"); !ok || got.Values[0].Int64() != 2 {
		t.Errorf("get(add 1 1) = %v, %v", got, ok)
	}
	if c.len() != 2 {
		t.Errorf("len = %d, want 2", c.len())
	}
}

func TestMemoCacheReturnsCopies(t *testing.T) {
	t.Parallel()
	c := newMemoCache(1)
	c.put("divrem 7 2", Output{Values: []bigint.Int{bigint.NewInt(3), bigint.NewInt(1)}})

	got, _ := c.get("divrem 7 2")
	got.Values[0] = bigint.NewInt(99)

	again, _ := c.get("divrem 7 2")
	if again.Values[0].Int64() != 3 {
		t.Errorf("cache entry was mutated through a returned slice: %s", again.Values[0])
	}
}

func TestMemoCacheOverwrite(t *testing.T) {
	t.Parallel()
	c := newMemoCache(4)
	c.put("conv 255 16", Output{Verdict: "FF"})
	c.put("conv 255 16", Output{Verdict: "ff"})
	if got, _ := c.get("conv 255 16"); got.Verdict != "ff" || c.len() != 1 {
		t.Errorf("get = %q, len = %d", got.Verdict, c.len())
	}
}

func TestNewMemoCacheDisabled(t *testing.T) {
	t.Parallel()
	if newMemoCache(0) != nil || newMemoCache(-1) != nil {
		t.Error("non-positive capacity should disable the cache")
	}
}
