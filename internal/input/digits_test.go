package input

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestReadDigits(t *testing.T) {
	rows, err := ReadDigits(strings.NewReader("  123\r\n\n456  \n789\n\n"))
	if err != nil {
		t.Fatalf("ReadDigits: %v", err)
	}
	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if !slices.EqualFunc(rows, want, slices.Equal) {
		t.Fatalf("got %v, want %v", rows, want)
	}
}

func TestReadDigitsKeepsJaggedRows(t *testing.T) {
	rows, err := ReadDigits(strings.NewReader("12\n3\n"))
	if err != nil {
		t.Fatalf("ReadDigits: %v", err)
	}
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestReadDigitsRejectsNonDigits(t *testing.T) {
	for _, in := range []string{"12a\n", "1 2\n", "٣\n", "12\n-1\n"} {
		_, err := ReadDigits(strings.NewReader(in))
		if !errors.Is(err, ErrInvalidDigit) {
			t.Fatalf("ReadDigits(%q): expected ErrInvalidDigit, got %v", in, err)
		}
	}
	_, err := ReadDigits(strings.NewReader("11\n1x\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2 column 2") {
		t.Fatalf("expected position in error, got %v", err)
	}
}

func TestReadDigitsEmpty(t *testing.T) {
	rows, err := ReadDigits(strings.NewReader("\n \n"))
	if err != nil {
		t.Fatalf("ReadDigits: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}

func TestLoadDigits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	if err := os.WriteFile(path, []byte("01\n23\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := LoadDigits(path)
	if err != nil {
		t.Fatalf("LoadDigits: %v", err)
	}
	if !slices.EqualFunc(rows, [][]int{{0, 1}, {2, 3}}, slices.Equal) {
		t.Fatalf("unexpected rows %v", rows)
	}
	if _, err := LoadDigits(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
