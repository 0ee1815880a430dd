package archon

import "testing"

type scenarioPosition struct{ X, Y, Z float32 }
type scenarioVelocity struct{ X, Y, Z float32 }

// TestScenarioTwoComponentIteration is S1: two-component iteration mutating
// one component in place from the other's value.
func TestScenarioTwoComponentIteration(t *testing.T) {
	w := NewWorld()
	RegisterComponent[scenarioPosition](w)
	RegisterComponent[scenarioVelocity](w)

	entities := make([]EntityId, 3)
	for i := 1; i <= 3; i++ {
		e := CreateEntity(w)
		AddComponents2(w, e, scenarioPosition{X: float32(i)}, scenarioVelocity{X: 1})
		entities[i-1] = e
	}

	NewQuery2[scenarioPosition, scenarioVelocity](w).Each(func(p *scenarioPosition, v *scenarioVelocity) {
		p.X += v.X
	})

	for i, e := range entities {
		want := float32(i+1) + 1
		if got := Get[scenarioPosition](w, e).X; got != want {
			t.Errorf("entity %d: Position.X = %v, want %v", e, got, want)
		}
	}
}

type scenarioA struct{ V int32 }
type scenarioB struct{ S string }

// TestScenarioArchetypeMigration is S2: adding a second component type
// migrates the entity to the {A,B} archetype while preserving A.
func TestScenarioArchetypeMigration(t *testing.T) {
	w := NewWorld()
	RegisterComponent[scenarioA](w)
	RegisterComponent[scenarioB](w)

	e := CreateEntity(w)
	AddComponents1(w, e, scenarioA{V: 42})
	AddComponents1(w, e, scenarioB{S: "hello"})

	if got := Get[scenarioA](w, e).V; got != 42 {
		t.Errorf("A.V = %v, want 42", got)
	}
	if got := Get[scenarioB](w, e).S; got != "hello" {
		t.Errorf("B.S = %q, want %q", got, "hello")
	}

	wantMask := maskOf(ComponentIDOf[scenarioA](w), ComponentIDOf[scenarioB](w))
	if got := w.mustMeta(e).archetype.mask; got != wantMask {
		t.Errorf("archetype mask = %v, want %v", got, wantMask)
	}
}

type scenarioT struct{ K int32 }

// TestScenarioRemoveMidArraySwap is S3: removing a middle entity swaps the
// last row into its place without disturbing other entities' values.
func TestScenarioRemoveMidArraySwap(t *testing.T) {
	w := NewWorld()
	RegisterComponent[scenarioT](w)

	e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
	AddComponents1(w, e1, scenarioT{K: 1})
	AddComponents1(w, e2, scenarioT{K: 2})
	AddComponents1(w, e3, scenarioT{K: 3})

	w.RemoveEntity(e2)

	q := NewQuery1[scenarioT](w)
	if got := q.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}

	seen := map[int32]bool{}
	q.Each(func(v *scenarioT) { seen[v.K] = true })
	if !seen[1] || !seen[3] || seen[2] {
		t.Errorf("surviving values = %v, want {1, 3}", seen)
	}

	if got := Get[scenarioT](w, e1).K; got != 1 {
		t.Errorf("e1.K = %d, want 1", got)
	}
	if got := Get[scenarioT](w, e3).K; got != 3 {
		t.Errorf("e3.K = %d, want 3", got)
	}
}

type scenarioP struct{}
type scenarioEnemyTag struct{}

// TestScenarioExcludeFilter is S4: Without() excludes matching archetypes
// entirely, including from Size and Each.
func TestScenarioExcludeFilter(t *testing.T) {
	w := NewWorld()
	RegisterComponent[scenarioP](w)
	RegisterComponent[scenarioEnemyTag](w)

	e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
	AddComponents1(w, e1, scenarioP{})
	AddComponents2(w, e2, scenarioP{}, scenarioEnemyTag{})
	AddComponents1(w, e3, scenarioP{})

	q := NewQuery1[scenarioP](w).Without(ComponentIDOf[scenarioEnemyTag](w))
	if got := q.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
	q.EachE(func(e EntityId, _ *scenarioP) {
		if e == e2 {
			t.Errorf("excluded entity %d was visited", e2)
		}
	})
}

// TestScenarioRemoveIf is S5: remove_if deletes matching rows and leaves
// only the survivors.
func TestScenarioRemoveIf(t *testing.T) {
	w := NewWorld()
	RegisterComponent[scenarioP2](w)

	values := []int32{-5, 10, -2, 8}
	for _, v := range values {
		e := CreateEntity(w)
		AddComponents1(w, e, scenarioP2{X: v})
	}

	q := NewQuery1[scenarioP2](w)
	q.RemoveIf(func(_ EntityId, p *scenarioP2) bool { return p.X < 0 })

	if got := q.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
	q.Each(func(p *scenarioP2) {
		if p.X <= 0 {
			t.Errorf("surviving P.x = %d, want > 0", p.X)
		}
	})
}

type scenarioP2 struct{ X int32 }

// TestScenarioReadOnlyCallback stands in for S6: Go has no const-reference
// type, so nothing distinguishes a "const world" from a mutable one at the
// type level (see DESIGN.md, accepted Go limitations). This just confirms
// a callback that only reads its components compiles and runs correctly,
// which is the only part of S6 that has a Go equivalent.
func TestScenarioReadOnlyCallback(t *testing.T) {
	w := NewWorld()
	RegisterComponent[scenarioPosition](w)
	RegisterComponent[scenarioVelocity](w)

	e := CreateEntity(w)
	AddComponents2(w, e, scenarioPosition{X: 1}, scenarioVelocity{X: 1})

	sum := float32(0)
	NewQuery2[scenarioPosition, scenarioVelocity](w).Each(func(p *scenarioPosition, v *scenarioVelocity) {
		sum += p.X + v.X
	})
	if sum != 2 {
		t.Errorf("sum = %v, want 2", sum)
	}
}
