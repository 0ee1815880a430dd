package archon

import (
	"fmt"
	"unsafe"
)

// indexOfID returns the position of id in ids, or -1 if absent. ids is
// always at most 4 elements long (one per AddComponentsN/RemoveComponentsN
// arity), so a linear scan beats building a set.
func indexOfID(ids []ComponentID, id ComponentID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// addComponentsRaw implements the archetype transition protocol's add
// direction: verify none of ids is already present, compute the target
// mask, resolve or create the destination archetype, append a row
// transferring carried-over components and constructing the newly added
// ones, swap-remove the source row, and fix up entity bookkeeping.
//
// Adding a component type an entity already carries is a precondition
// violation, matching original_source/include/archon/ecs.impl.h's
// assert(current_mask != target_mask && "Adding Components twice") and
// spec.md §7's error taxonomy, which groups it with other programmer
// errors detected via assertion.
func addComponentsRaw(w *World, e EntityId, ids []ComponentID, values []unsafe.Pointer) {
	meta := w.mustMeta(e)
	oldArch := meta.archetype

	for _, id := range ids {
		if oldArch.mask.Has(id) {
			panic(fmt.Sprintf("archon: entity %d already has component %d", e, id))
		}
	}

	targetMask := oldArch.mask
	for _, id := range ids {
		targetMask = targetMask.Set(id)
	}

	newArch := w.archetypes.getOrCreate(targetMask, w.registry)
	oldRow := meta.row

	newRow := newArch.addRowFromSources(e, func(id ComponentID, col *componentColumn) {
		if i := indexOfID(ids, id); i >= 0 {
			col.pushCopy(values[i])
			return
		}
		col.push(oldArch.column(id).ptr(oldRow), true)
	})

	moved, didMove := oldArch.removeRow(oldRow)
	if didMove {
		w.entities[moved].row = oldRow
	}
	w.entities[e] = entityMeta{archetype: newArch, row: newRow}
}

// removeComponentsRaw implements the transition protocol's remove
// direction. Ids not currently present on e are ignored; if none of ids
// were present, this is a no-op.
func removeComponentsRaw(w *World, e EntityId, ids []ComponentID) {
	meta := w.mustMeta(e)
	oldArch := meta.archetype

	targetMask := oldArch.mask
	for _, id := range ids {
		targetMask = targetMask.Clear(id)
	}

	if targetMask == oldArch.mask {
		return
	}

	newArch := w.archetypes.getOrCreate(targetMask, w.registry)
	oldRow := meta.row

	newRow := newArch.addRowFromSources(e, func(id ComponentID, col *componentColumn) {
		col.push(oldArch.column(id).ptr(oldRow), true)
	})

	moved, didMove := oldArch.removeRow(oldRow)
	if didMove {
		w.entities[moved].row = oldRow
	}
	w.entities[e] = entityMeta{archetype: newArch, row: newRow}
}

// AddComponents1 adds a single component to e, moving it to the archetype
// for its new component set. T1 must already be registered on w.
func AddComponents1[T1 any](w *World, e EntityId, v1 T1) {
	id1 := ComponentIDOf[T1](w)
	addComponentsRaw(w, e, []ComponentID{id1}, []unsafe.Pointer{unsafe.Pointer(&v1)})
}

// AddComponents2 adds two components to e in a single archetype
// transition.
func AddComponents2[T1, T2 any](w *World, e EntityId, v1 T1, v2 T2) {
	id1, id2 := ComponentIDOf[T1](w), ComponentIDOf[T2](w)
	addComponentsRaw(w, e,
		[]ComponentID{id1, id2},
		[]unsafe.Pointer{unsafe.Pointer(&v1), unsafe.Pointer(&v2)})
}

// AddComponents3 adds three components to e in a single archetype
// transition.
func AddComponents3[T1, T2, T3 any](w *World, e EntityId, v1 T1, v2 T2, v3 T3) {
	id1, id2, id3 := ComponentIDOf[T1](w), ComponentIDOf[T2](w), ComponentIDOf[T3](w)
	addComponentsRaw(w, e,
		[]ComponentID{id1, id2, id3},
		[]unsafe.Pointer{unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3)})
}

// AddComponents4 adds four components to e in a single archetype
// transition.
func AddComponents4[T1, T2, T3, T4 any](w *World, e EntityId, v1 T1, v2 T2, v3 T3, v4 T4) {
	id1, id2, id3, id4 := ComponentIDOf[T1](w), ComponentIDOf[T2](w), ComponentIDOf[T3](w), ComponentIDOf[T4](w)
	addComponentsRaw(w, e,
		[]ComponentID{id1, id2, id3, id4},
		[]unsafe.Pointer{unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3), unsafe.Pointer(&v4)})
}

// RemoveComponents1 removes a single component type from e, if present.
func RemoveComponents1[T1 any](w *World, e EntityId) {
	removeComponentsRaw(w, e, []ComponentID{ComponentIDOf[T1](w)})
}

// RemoveComponents2 removes two component types from e, if present.
func RemoveComponents2[T1, T2 any](w *World, e EntityId) {
	removeComponentsRaw(w, e, []ComponentID{ComponentIDOf[T1](w), ComponentIDOf[T2](w)})
}

// RemoveComponents3 removes three component types from e, if present.
func RemoveComponents3[T1, T2, T3 any](w *World, e EntityId) {
	removeComponentsRaw(w, e, []ComponentID{ComponentIDOf[T1](w), ComponentIDOf[T2](w), ComponentIDOf[T3](w)})
}

// RemoveComponents4 removes four component types from e, if present.
func RemoveComponents4[T1, T2, T3, T4 any](w *World, e EntityId) {
	removeComponentsRaw(w, e, []ComponentID{
		ComponentIDOf[T1](w), ComponentIDOf[T2](w), ComponentIDOf[T3](w), ComponentIDOf[T4](w),
	})
}
