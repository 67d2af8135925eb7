//go:build tiles_noalloc

package tiles

import (
	"errors"
	"testing"
)

func TestInlineLedgerLimit(t *testing.T) {
	teardown := traceTest(t)
	defer teardown()
	//
	_, err := NewStaticMapWithConfig[rune, Cells16[rune]](Ext(4, 4), Config{MaxBorrows: fixedMaxBorrows + 1})
	if !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments above inline ledger capacity, got %v", err)
	}
	m, err := NewStaticMap[rune, Cells64[rune]](Ext(64, 1))
	if err != nil {
		t.Fatalf("unexpected NewStaticMap error: %v", err)
	}
	var regions []*Region[rune, *FixedStore[rune, Cells64[rune], *Cells64[rune]]]
	for x := range fixedMaxBorrows {
		r, err := m.Region(At(x, 0), Ext(1, 1))
		if err != nil {
			t.Fatalf("region %d failed: %v", x, err)
		}
		regions = append(regions, r)
	}
	if _, err := m.Region(At(0, 0), Ext(1, 1)); !errors.Is(err, ErrTooManyBorrows) {
		t.Fatalf("expected ErrTooManyBorrows, got %v", err)
	}
	regions[10].Release()
	if _, err := m.Region(At(10, 0), Ext(1, 1)); err != nil {
		t.Fatalf("region after release failed: %v", err)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}
