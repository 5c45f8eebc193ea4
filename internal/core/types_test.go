package core

import (
	"errors"
	"slices"
	"testing"
)

type stubSim struct{ steps int }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s *stubSim) Reset(int64)    { s.steps = 0 }
func (s *stubSim) Step()          { s.steps++ }
func (s *stubSim) Cells() []uint8 { return []uint8{uint8(s.steps)} }

func TestRegisterAndLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	t.Cleanup(func() { delete(sims, "stub-test") })

	f, err := Lookup("stub-test")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	sim, err := f(nil)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	sim.Step()
	if sim.Cells()[0] != 1 {
		t.Fatalf("unexpected cells %v", sim.Cells())
	}

	names := Names()
	if !slices.Contains(names, "stub-test") || slices.Contains(names, "") || slices.Contains(names, "nil-factory") {
		t.Fatalf("unexpected names %v", names)
	}
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}

	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}
