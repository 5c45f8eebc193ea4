package core

import (
	"slices"
	"testing"
)

func TestNewBoundsClampsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		b := NewBounds(dims[0], dims[1])
		if b.Len() != 0 {
			t.Fatalf("NewBounds%v has %d cells", dims, b.Len())
		}
		if n := len(slices.Collect(b.All())); n != 0 {
			t.Fatalf("NewBounds%v yielded %d points", dims, n)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	b := NewBounds(3, 5)
	i := 0
	for p := range b.All() {
		if b.Index(p.Row, p.Col) != i {
			t.Fatalf("Index(%v) = %d, want %d", p, b.Index(p.Row, p.Col), i)
		}
		if b.At(i) != p {
			t.Fatalf("At(%d) = %v, want %v", i, b.At(i), p)
		}
		i++
	}
	if i != b.Len() {
		t.Fatalf("All yielded %d points, want %d", i, b.Len())
	}
}

func TestMooreDoesNotWrap(t *testing.T) {
	b := NewBounds(2, 4)
	got := slices.Collect(b.Moore(0, 3))
	want := []Point{{0, 2}, {1, 2}, {1, 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("Moore(0,3) = %v, want %v", got, want)
	}
	if n := len(slices.Collect(b.Moore(1, 1))); n != 5 {
		t.Fatalf("Moore(1,1) has %d neighbours, want 5", n)
	}
	if b.Contains(2, 0) || b.Contains(0, 4) || !b.Contains(1, 3) {
		t.Fatal("Contains misreports bounds")
	}
}
