package trie

// NodeRef is a stable index into a node arena. The zero value is the
// sentinel "absent" reference; no live node is ever stored at index 0.
type NodeRef uint32

// ValueRef is a stable index into a value arena, with the same sentinel
// convention as NodeRef.
type ValueRef uint32

// nilRef is the sentinel value shared by NodeRef and ValueRef: "points at
// nothing." It is deliberately the zero value so a freshly zeroed NodeRef
// or ValueRef is already the sentinel.
const nilRef = 0

// IsNil reports whether r is the sentinel "absent" reference.
func (r NodeRef) IsNil() bool { return r == nilRef }

// IsNil reports whether r is the sentinel "absent" reference.
func (r ValueRef) IsNil() bool { return r == nilRef }

// arena is a slot store providing stable indices into a slice of T, so that
// a node can be removed, transformed into a different variant, and
// reinserted without invalidating any other reference into the arena.
// Indices start at 1; index 0 is reserved for the sentinel so the zero value
// of NodeRef/ValueRef never aliases a live entry. Slots carry no generation
// counter: a reference to a freed slot that has since been reused resolves
// to the new occupant rather than being reported as dangling.
//
// Freed slots are recycled via an internal free list, which keeps the
// arena's backing slice compact under the insert/remove/reinsert churn a
// single Trie.Insert call performs: only the handful of nodes on the path
// from the root to the inserted key are ever touched.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
}

type slot[T any] struct {
	value T
	live  bool
}

func newArena[T any]() *arena[T] {
	// index 0 is the reserved sentinel slot and is never live.
	return &arena[T]{slots: make([]slot[T], 1, 64)}
}

// Len reports the number of live entries in the arena.
func (a *arena[T]) Len() int {
	n := 0
	for _, s := range a.slots {
		if s.live {
			n++
		}
	}
	return n
}

// insert stores value in a free slot (reusing one if available) and returns
// its stable index.
func (a *arena[T]) insert(value T) uint32 {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = slot[T]{value: value, live: true}
		return idx
	}
	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: value, live: true})
	return idx
}

// get returns a pointer to the live entry at idx. It panics if idx does not
// address a live entry: a dangling reference is always a programmer error,
// never an input-validation concern.
func (a *arena[T]) get(idx uint32) *T {
	invariant(idx != nilRef && int(idx) < len(a.slots) && a.slots[idx].live, "dangling arena reference")
	return &a.slots[idx].value
}

// tryRemove removes the entry at idx, returning its former contents, and
// frees the slot for reuse. It panics on a dangling reference, same as get.
func (a *arena[T]) tryRemove(idx uint32) T {
	invariant(idx != nilRef && int(idx) < len(a.slots) && a.slots[idx].live, "dangling arena reference")
	value := a.slots[idx].value
	var zero T
	a.slots[idx] = slot[T]{value: zero, live: false}
	a.free = append(a.free, idx)
	return value
}

// arenas bundles the node and value arenas a Trie owns, and is threaded
// through get/insert as the collaborator every node method needs to resolve
// a NodeRef or ValueRef into its live value.
type arenas struct {
	nodes  *arena[Node]
	values *arena[valueSlot]
}

func newArenas() *arenas {
	return &arenas{nodes: newArena[Node](), values: newArena[valueSlot]()}
}

func (a *arenas) getNode(ref NodeRef) Node        { return *a.nodes.get(uint32(ref)) }
func (a *arenas) removeNode(ref NodeRef) Node     { return a.nodes.tryRemove(uint32(ref)) }
func (a *arenas) insertNode(n Node) NodeRef       { return NodeRef(a.nodes.insert(n)) }
func (a *arenas) getValue(ref ValueRef) *valueSlot {
	return a.values.get(uint32(ref))
}
func (a *arenas) insertValue(v valueSlot) ValueRef { return ValueRef(a.values.insert(v)) }
