package archon

import (
	"reflect"
	"unsafe"
)

// columnInitialCapacity is the number of elements a componentColumn
// allocates on its first growth.
const columnInitialCapacity = 8

// componentColumn is a type-erased, growable structure-of-arrays vector
// holding every value of one component type across every row of an
// Archetype. It is backed by a reflect-constructed Go slice rather than a
// raw byte buffer so that growth, indexing, and garbage-collector scanning
// stay correct for pointer-containing component types — the Go analogue of
// the spec's byte-buffer ComponentColumn, adapted for GC safety.
type componentColumn struct {
	info *ComponentTypeInfo
	data reflect.Value // slice of the concrete component type; len(data) is the allocated capacity
	n    int           // logical element count, always <= data.Len()
}

func newComponentColumn(info *ComponentTypeInfo) *componentColumn {
	return &componentColumn{
		info: info,
		data: reflect.MakeSlice(reflect.SliceOf(info.typ), 0, 0),
	}
}

// size returns the number of occupied slots.
func (c *componentColumn) size() int {
	return c.n
}

// reserve grows the backing buffer, if needed, so that at least n elements
// fit without further reallocation.
func (c *componentColumn) reserve(n int) {
	if c.data.Len() >= n {
		return
	}
	newCap := max(c.data.Len()*2, columnInitialCapacity)
	newCap = max(newCap, n)
	newData := reflect.MakeSlice(c.data.Type(), newCap, newCap)
	reflect.Copy(newData, c.data)
	c.data = newData
}

// ptr returns a pointer to the element at row i. i must be < size().
func (c *componentColumn) ptr(i int) unsafe.Pointer {
	return c.data.Index(i).Addr().UnsafePointer()
}

// pushCopy appends a new occupied slot and copies src into it, leaving src
// untouched. It returns the new slot's index.
func (c *componentColumn) pushCopy(src unsafe.Pointer) int {
	c.reserve(c.n + 1)
	dst := c.ptr(c.n)
	c.info.copyInto(dst, src)
	c.n++
	return c.n - 1
}

// pushDefault appends a new occupied slot holding the Go zero value. It
// returns the new slot's index.
func (c *componentColumn) pushDefault() int {
	c.reserve(c.n + 1)
	dst := c.ptr(c.n)
	c.info.zero(dst)
	c.n++
	return c.n - 1
}

// push appends a new occupied slot and transfers src into it. If consume is
// true, src is the sole remaining reference to that value (it is about to
// be discarded by the caller, e.g. a swap-removed source row) and is zeroed
// once the value has been copied out, dropping any pointers it held a
// version earlier than the caller would otherwise. It returns the new
// slot's index.
func (c *componentColumn) push(src unsafe.Pointer, consume bool) int {
	i := c.pushCopy(src)
	if consume {
		c.info.zero(src)
	}
	return i
}

// remove deletes the element at row i via swap-remove: the last element is
// moved into slot i (unless i is already last) and the vacated last slot is
// zeroed so it holds no stale pointers.
func (c *componentColumn) remove(i int) {
	last := c.n - 1
	if i != last {
		c.info.copyInto(c.ptr(i), c.ptr(last))
	}
	c.info.zero(c.ptr(last))
	c.n--
}

// clear empties the column, zeroing every occupied slot.
func (c *componentColumn) clear() {
	for i := 0; i < c.n; i++ {
		c.info.zero(c.ptr(i))
	}
	c.n = 0
}

// typedSlice returns a real Go slice of type T backed by c's buffer,
// letting query hot loops use ordinary indexed access instead of manual
// pointer arithmetic. The returned slice is invalidated by any subsequent
// mutation of c (push, remove, reserve).
func typedSlice[T any](c *componentColumn) []T {
	if c.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(c.ptr(0)), c.n)
}
