package archon

// Query1 iterates every entity carrying a T1 component (plus any types
// added with With, minus any excluded with Without). Iteration order is
// stable across calls on an unmodified World: archetypes are visited in
// the order they were first created, and rows within an archetype in row
// order.
type Query1[T1 any] struct {
	world   *World
	include ComponentMask
	exclude ComponentMask
	id1     ComponentID
}

// NewQuery1 builds a query for entities carrying a T1 component. T1 must
// already be registered on w.
func NewQuery1[T1 any](w *World) *Query1[T1] {
	id1 := ComponentIDOf[T1](w)
	return &Query1[T1]{world: w, include: maskOf(id1), id1: id1}
}

// With additionally requires every listed component id to be present.
func (q *Query1[T1]) With(ids ...ComponentID) *Query1[T1] {
	q.include = q.include.Union(maskOf(ids...))
	return q
}

// Without excludes archetypes carrying any of the listed component ids.
func (q *Query1[T1]) Without(ids ...ComponentID) *Query1[T1] {
	q.exclude = q.exclude.Union(maskOf(ids...))
	return q
}

func (q *Query1[T1]) matches(a *Archetype) bool {
	return a.entityCount() > 0 && a.mask.IsSupersetOf(q.include) && !a.mask.Intersects(q.exclude)
}

// Each calls fn once per matching entity's T1 component.
func (q *Query1[T1]) Each(fn func(*T1)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		for i := range s1 {
			fn(&s1[i])
		}
	}
}

// EachE calls fn once per matching entity, with its id and T1 component.
func (q *Query1[T1]) EachE(fn func(EntityId, *T1)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		for i := range s1 {
			fn(a.entities[i], &s1[i])
		}
	}
}

// Size returns the number of entities the query currently matches.
func (q *Query1[T1]) Size() int {
	n := 0
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			n += a.entityCount()
		}
	}
	return n
}

// Clear removes every entity the query currently matches from the World.
func (q *Query1[T1]) Clear() {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		clearArchetype(q.world, a)
	}
}

// RemoveIf removes every matching entity for which pred returns true.
// pred is evaluated for every matching entity in an archetype before any
// of them are removed, so a panic inside pred never leaves the archetype
// partially swap-removed.
func (q *Query1[T1]) RemoveIf(pred func(EntityId, *T1) bool) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		toRemove := selectRows(len(a.entities), func(i int) bool { return pred(a.entities[i], &s1[i]) })
		removeRows(q.world, a, toRemove)
	}
}

// clearArchetype removes every row of a, invalidating each removed
// entity's bookkeeping in w.
func clearArchetype(w *World, a *Archetype) {
	for _, e := range a.entities {
		w.entities[e] = entityMeta{}
	}
	a.clear()
}

// selectRows evaluates keep for every row index in [0, n) and returns the
// indices for which it returned true, in ascending order.
func selectRows(n int, keep func(i int) bool) []int {
	var rows []int
	for i := 0; i < n; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

// removeRows swap-removes every row index in rows from a, fixing up w's
// entity bookkeeping as it goes. rows must be in ascending order; they are
// processed highest-first so an earlier swap-remove never displaces a row
// still waiting to be removed.
func removeRows(w *World, a *Archetype, rows []int) {
	for j := len(rows) - 1; j >= 0; j-- {
		i := rows[j]
		e := a.entities[i]
		moved, didMove := a.removeRow(i)
		if didMove {
			w.entities[moved].row = i
		}
		w.entities[e] = entityMeta{}
	}
}

// Query2 iterates every entity carrying both a T1 and a T2 component.
type Query2[T1, T2 any] struct {
	world   *World
	include ComponentMask
	exclude ComponentMask
	id1     ComponentID
	id2     ComponentID
}

// NewQuery2 builds a query for entities carrying T1 and T2 components.
func NewQuery2[T1, T2 any](w *World) *Query2[T1, T2] {
	id1, id2 := ComponentIDOf[T1](w), ComponentIDOf[T2](w)
	return &Query2[T1, T2]{world: w, include: maskOf(id1, id2), id1: id1, id2: id2}
}

func (q *Query2[T1, T2]) With(ids ...ComponentID) *Query2[T1, T2] {
	q.include = q.include.Union(maskOf(ids...))
	return q
}

func (q *Query2[T1, T2]) Without(ids ...ComponentID) *Query2[T1, T2] {
	q.exclude = q.exclude.Union(maskOf(ids...))
	return q
}

func (q *Query2[T1, T2]) matches(a *Archetype) bool {
	return a.entityCount() > 0 && a.mask.IsSupersetOf(q.include) && !a.mask.Intersects(q.exclude)
}

func (q *Query2[T1, T2]) Each(fn func(*T1, *T2)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1, s2 := typedSlice[T1](a.column(q.id1)), typedSlice[T2](a.column(q.id2))
		for i := range s1 {
			fn(&s1[i], &s2[i])
		}
	}
}

func (q *Query2[T1, T2]) EachE(fn func(EntityId, *T1, *T2)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1, s2 := typedSlice[T1](a.column(q.id1)), typedSlice[T2](a.column(q.id2))
		for i := range s1 {
			fn(a.entities[i], &s1[i], &s2[i])
		}
	}
}

func (q *Query2[T1, T2]) Size() int {
	n := 0
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			n += a.entityCount()
		}
	}
	return n
}

func (q *Query2[T1, T2]) Clear() {
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			clearArchetype(q.world, a)
		}
	}
}

func (q *Query2[T1, T2]) RemoveIf(pred func(EntityId, *T1, *T2) bool) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1, s2 := typedSlice[T1](a.column(q.id1)), typedSlice[T2](a.column(q.id2))
		toRemove := selectRows(len(a.entities), func(i int) bool { return pred(a.entities[i], &s1[i], &s2[i]) })
		removeRows(q.world, a, toRemove)
	}
}

// Query3 iterates every entity carrying T1, T2, and T3 components.
type Query3[T1, T2, T3 any] struct {
	world   *World
	include ComponentMask
	exclude ComponentMask
	id1     ComponentID
	id2     ComponentID
	id3     ComponentID
}

// NewQuery3 builds a query for entities carrying T1, T2, and T3 components.
func NewQuery3[T1, T2, T3 any](w *World) *Query3[T1, T2, T3] {
	id1, id2, id3 := ComponentIDOf[T1](w), ComponentIDOf[T2](w), ComponentIDOf[T3](w)
	return &Query3[T1, T2, T3]{world: w, include: maskOf(id1, id2, id3), id1: id1, id2: id2, id3: id3}
}

func (q *Query3[T1, T2, T3]) With(ids ...ComponentID) *Query3[T1, T2, T3] {
	q.include = q.include.Union(maskOf(ids...))
	return q
}

func (q *Query3[T1, T2, T3]) Without(ids ...ComponentID) *Query3[T1, T2, T3] {
	q.exclude = q.exclude.Union(maskOf(ids...))
	return q
}

func (q *Query3[T1, T2, T3]) matches(a *Archetype) bool {
	return a.entityCount() > 0 && a.mask.IsSupersetOf(q.include) && !a.mask.Intersects(q.exclude)
}

func (q *Query3[T1, T2, T3]) Each(fn func(*T1, *T2, *T3)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		s2 := typedSlice[T2](a.column(q.id2))
		s3 := typedSlice[T3](a.column(q.id3))
		for i := range s1 {
			fn(&s1[i], &s2[i], &s3[i])
		}
	}
}

func (q *Query3[T1, T2, T3]) EachE(fn func(EntityId, *T1, *T2, *T3)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		s2 := typedSlice[T2](a.column(q.id2))
		s3 := typedSlice[T3](a.column(q.id3))
		for i := range s1 {
			fn(a.entities[i], &s1[i], &s2[i], &s3[i])
		}
	}
}

func (q *Query3[T1, T2, T3]) Size() int {
	n := 0
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			n += a.entityCount()
		}
	}
	return n
}

func (q *Query3[T1, T2, T3]) Clear() {
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			clearArchetype(q.world, a)
		}
	}
}

func (q *Query3[T1, T2, T3]) RemoveIf(pred func(EntityId, *T1, *T2, *T3) bool) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		s2 := typedSlice[T2](a.column(q.id2))
		s3 := typedSlice[T3](a.column(q.id3))
		toRemove := selectRows(len(a.entities), func(i int) bool { return pred(a.entities[i], &s1[i], &s2[i], &s3[i]) })
		removeRows(q.world, a, toRemove)
	}
}

// Query4 iterates every entity carrying T1, T2, T3, and T4 components.
type Query4[T1, T2, T3, T4 any] struct {
	world   *World
	include ComponentMask
	exclude ComponentMask
	id1     ComponentID
	id2     ComponentID
	id3     ComponentID
	id4     ComponentID
}

// NewQuery4 builds a query for entities carrying T1, T2, T3, and T4
// components.
func NewQuery4[T1, T2, T3, T4 any](w *World) *Query4[T1, T2, T3, T4] {
	id1, id2, id3, id4 := ComponentIDOf[T1](w), ComponentIDOf[T2](w), ComponentIDOf[T3](w), ComponentIDOf[T4](w)
	return &Query4[T1, T2, T3, T4]{
		world: w, include: maskOf(id1, id2, id3, id4),
		id1: id1, id2: id2, id3: id3, id4: id4,
	}
}

func (q *Query4[T1, T2, T3, T4]) With(ids ...ComponentID) *Query4[T1, T2, T3, T4] {
	q.include = q.include.Union(maskOf(ids...))
	return q
}

func (q *Query4[T1, T2, T3, T4]) Without(ids ...ComponentID) *Query4[T1, T2, T3, T4] {
	q.exclude = q.exclude.Union(maskOf(ids...))
	return q
}

func (q *Query4[T1, T2, T3, T4]) matches(a *Archetype) bool {
	return a.entityCount() > 0 && a.mask.IsSupersetOf(q.include) && !a.mask.Intersects(q.exclude)
}

func (q *Query4[T1, T2, T3, T4]) Each(fn func(*T1, *T2, *T3, *T4)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		s2 := typedSlice[T2](a.column(q.id2))
		s3 := typedSlice[T3](a.column(q.id3))
		s4 := typedSlice[T4](a.column(q.id4))
		for i := range s1 {
			fn(&s1[i], &s2[i], &s3[i], &s4[i])
		}
	}
}

func (q *Query4[T1, T2, T3, T4]) EachE(fn func(EntityId, *T1, *T2, *T3, *T4)) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		s2 := typedSlice[T2](a.column(q.id2))
		s3 := typedSlice[T3](a.column(q.id3))
		s4 := typedSlice[T4](a.column(q.id4))
		for i := range s1 {
			fn(a.entities[i], &s1[i], &s2[i], &s3[i], &s4[i])
		}
	}
}

func (q *Query4[T1, T2, T3, T4]) Size() int {
	n := 0
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			n += a.entityCount()
		}
	}
	return n
}

func (q *Query4[T1, T2, T3, T4]) Clear() {
	for _, a := range q.world.archetypes.list {
		if q.matches(a) {
			clearArchetype(q.world, a)
		}
	}
}

func (q *Query4[T1, T2, T3, T4]) RemoveIf(pred func(EntityId, *T1, *T2, *T3, *T4) bool) {
	for _, a := range q.world.archetypes.list {
		if !q.matches(a) {
			continue
		}
		s1 := typedSlice[T1](a.column(q.id1))
		s2 := typedSlice[T2](a.column(q.id2))
		s3 := typedSlice[T3](a.column(q.id3))
		s4 := typedSlice[T4](a.column(q.id4))
		toRemove := selectRows(len(a.entities), func(i int) bool {
			return pred(a.entities[i], &s1[i], &s2[i], &s3[i], &s4[i])
		})
		removeRows(q.world, a, toRemove)
	}
}
