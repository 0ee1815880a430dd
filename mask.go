package archon

import "fmt"

// MaxComponents is the number of distinct component types a World can
// register. ComponentMask has one bit per slot, so this is fixed at the
// machine word width used for the mask.
const MaxComponents = 32

// ComponentMask is a bitset over registered ComponentIDs, one bit per id.
// It is used both to identify an Archetype (the exact set of components its
// entities carry) and to describe a Query's include/exclude filter.
type ComponentMask uint32

// Set returns the mask with id's bit set.
func (m ComponentMask) Set(id ComponentID) ComponentMask {
	if int(id) >= MaxComponents {
		panic(fmt.Sprintf("archon: component id %d exceeds MaxComponents (%d)", id, MaxComponents))
	}
	return m | (1 << uint(id))
}

// Clear returns the mask with id's bit cleared.
func (m ComponentMask) Clear(id ComponentID) ComponentMask {
	if int(id) >= MaxComponents {
		return m
	}
	return m &^ (1 << uint(id))
}

// Has reports whether id's bit is set.
func (m ComponentMask) Has(id ComponentID) bool {
	if int(id) >= MaxComponents {
		return false
	}
	return m&(1<<uint(id)) != 0
}

// Union returns the bitwise OR of m and other.
func (m ComponentMask) Union(other ComponentMask) ComponentMask {
	return m | other
}

// Without returns m with every bit also set in other cleared.
func (m ComponentMask) Without(other ComponentMask) ComponentMask {
	return m &^ other
}

// IsSupersetOf reports whether m contains every bit set in other. It is the
// archetype-matching predicate for a query's include mask.
func (m ComponentMask) IsSupersetOf(other ComponentMask) bool {
	return m&other == other
}

// Intersects reports whether m and other share any set bit. It is the
// archetype-matching predicate for a query's exclude mask.
func (m ComponentMask) Intersects(other ComponentMask) bool {
	return m&other != 0
}

// IsEmpty reports whether no bit is set.
func (m ComponentMask) IsEmpty() bool {
	return m == 0
}

// maskOf builds a ComponentMask from a list of ids.
func maskOf(ids ...ComponentID) ComponentMask {
	var m ComponentMask
	for _, id := range ids {
		m = m.Set(id)
	}
	return m
}
