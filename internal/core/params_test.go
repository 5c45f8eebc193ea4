package core

import (
	"strings"
	"testing"
)

func TestParameterSnapshotLookupAndWrite(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 10), Int64Param("seed", "Seed", -4)}},
		{Name: "Run", Params: []Parameter{StringParam("order", "Order", "stack")}},
	}}

	p, ok := snap.Lookup("seed")
	if !ok || p.Value != "-4" || p.Type != ParamTypeInt {
		t.Fatalf("Lookup(seed) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unexpected parameter")
	}

	var b strings.Builder
	n, err := snap.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if int(n) != b.Len() {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, b.Len())
	}
	out := b.String()
	if !strings.HasPrefix(out, "Grid\n  Width") || !strings.Contains(out, "Run\n  Order") || !strings.HasSuffix(out, "stack\n") {
		t.Fatalf("unexpected listing:\n%s", out)
	}
}
