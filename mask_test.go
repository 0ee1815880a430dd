package archon

import "testing"

func TestComponentMaskSetHasClear(t *testing.T) {
	var m ComponentMask
	m = m.Set(3)
	if !m.Has(3) {
		t.Fatalf("Has(3) false after Set(3)")
	}
	if m.Has(4) {
		t.Fatalf("Has(4) true, want false")
	}
	m = m.Clear(3)
	if m.Has(3) {
		t.Fatalf("Has(3) true after Clear(3)")
	}
}

func TestComponentMaskUnionAndWithout(t *testing.T) {
	a := maskOf(1, 2)
	b := maskOf(2, 3)
	if got := a.Union(b); got != maskOf(1, 2, 3) {
		t.Errorf("Union = %v, want %v", got, maskOf(1, 2, 3))
	}
	if got := a.Without(b); got != maskOf(1) {
		t.Errorf("Without = %v, want %v", got, maskOf(1))
	}
}

func TestComponentMaskIsSupersetOf(t *testing.T) {
	full := maskOf(1, 2, 3)
	if !full.IsSupersetOf(maskOf(1, 2)) {
		t.Errorf("IsSupersetOf(subset) = false, want true")
	}
	if full.IsSupersetOf(maskOf(1, 4)) {
		t.Errorf("IsSupersetOf(non-subset) = true, want false")
	}
}

func TestComponentMaskIntersects(t *testing.T) {
	if !maskOf(1, 2).Intersects(maskOf(2, 3)) {
		t.Errorf("Intersects(overlapping) = false, want true")
	}
	if maskOf(1, 2).Intersects(maskOf(3, 4)) {
		t.Errorf("Intersects(disjoint) = true, want false")
	}
}

func TestComponentMaskIsEmpty(t *testing.T) {
	var m ComponentMask
	if !m.IsEmpty() {
		t.Errorf("zero mask IsEmpty() = false, want true")
	}
	if m.Set(0).IsEmpty() {
		t.Errorf("non-zero mask IsEmpty() = true, want false")
	}
}
