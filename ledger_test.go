package tiles

import (
	"errors"
	"testing"
)

func TestDeepReleaseCascade(t *testing.T) {
	teardown := traceTest(t)
	defer teardown()
	//
	m := makeStatic(t, 16, 16)
	root, err := m.Region(At(0, 0), Ext(14, 14))
	if err != nil {
		t.Fatalf("region failed: %v", err)
	}
	other, err := m.Region(At(14, 0), Ext(2, 2))
	if err != nil {
		t.Fatalf("region failed: %v", err)
	}
	chain := []*Region[rune, *FixedStore[rune, Cells256[rune], *Cells256[rune]]]{root}
	for i := 0; i < 12; i++ {
		last := chain[len(chain)-1]
		r, err := last.Region(At(1, 0), Ext(last.Width()-1, 1))
		if err != nil {
			t.Fatalf("nested region %d failed: %v", i, err)
		}
		chain = append(chain, r)
	}
	otherChild, err := other.Region(At(0, 1), Ext(1, 1)) // created after the chain
	if err != nil {
		t.Fatalf("nested region failed: %v", err)
	}
	if n := len(m.Borrows()); n != 15 {
		t.Fatalf("expected 15 live borrows, have %d", n)
	}
	root.Release()
	live := m.Borrows()
	if len(live) != 2 || live[0].ID != other.ID() || live[1].ID != otherChild.ID() {
		t.Fatalf("expected only the unrelated regions to survive, have %v", live)
	}
	for i, r := range chain {
		if !r.Released() {
			t.Fatalf("region %d of the chain survived its root", i)
		}
		if _, err := r.Get(At(0, 0)); !errors.Is(err, ErrReleased) {
			t.Fatalf("region %d: expected ErrReleased, got %v", i, err)
		}
	}
	if _, err := otherChild.Get(At(0, 0)); err != nil {
		t.Fatalf("surviving region failed: %v", err)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}
