package trie

// valueSlot is the (key, value) pair owned by a slot in the value arena.
// Both fields are stored as plain byte slices; callers may hand in anything
// viewable as []byte.
type valueSlot struct {
	key   []byte
	value []byte
}

// cachedHash is a node's memoized hash or inline encoding. length == 0 means
// the cache is dirty (must be recomputed). 0 < length < HashLength means
// buf[:length] is the node's RLP encoding, stored inline because it is
// shorter than the hash. length == HashLength means buf holds the digest of
// the node's RLP encoding (Keccak-256 by default). The zero value is dirty, which is exactly what a freshly
// constructed node should be.
type cachedHash struct {
	buf    [HashLength]byte
	length uint8
}

func (c cachedHash) isDirty() bool  { return c.length == 0 }
func (c cachedHash) isHashed() bool { return c.length == HashLength }
func (c cachedHash) bytes() []byte  { return c.buf[:c.length] }
func (c *cachedHash) markDirty()    { c.length = 0 }

func (c *cachedHash) setInline(data []byte) {
	invariant(len(data) < HashLength, "inline node encoding must be shorter than the hash length")
	c.length = uint8(len(data))
	copy(c.buf[:], data)
}

func (c *cachedHash) setHash(h Hash) {
	c.length = HashLength
	c.buf = h
}

// Node is the closed sum of the trie's three node kinds. get and insert
// dispatch through this interface's methods; encoding (hasher.go) and the
// structural check and value patching (trie.go) use a Go type switch.
type Node interface {
	// get resolves the value reachable by following path from this node.
	get(a *arenas, path NibbleSlice) (ValueRef, bool)

	// insert threads key/value into the subtree rooted at this node,
	// returning the node that should occupy this position afterwards (which
	// may be a different variant) and what the caller still owes the value
	// that was inserted.
	insert(a *arenas, path NibbleSlice, key, value []byte) (Node, InsertAction)

	// hash returns a pointer to this node's cached hash, so the hasher can
	// read or refresh it in place.
	hash() *cachedHash
}

// insertActionKind tags the three shapes InsertAction can take.
type insertActionKind byte

const (
	actionInsert insertActionKind = iota
	actionReplace
	actionInsertSelf
)

// InsertAction is returned from the innermost step of a recursive insert
// back up to its caller, describing what the caller still owes the value
// that was just logically inserted.
type InsertAction struct {
	kind  insertActionKind
	node  NodeRef  // valid when kind == actionInsert
	value ValueRef // valid when kind == actionReplace
}

// Insert reports that a brand new leaf was created at node, with a
// sentinel ValueRef the caller must patch in a freshly allocated value
// slot.
func Insert(node NodeRef) InsertAction { return InsertAction{kind: actionInsert, node: node} }

// Replace reports that an existing value slot must be overwritten; the
// caller is expected to return its old contents.
func Replace(value ValueRef) InsertAction { return InsertAction{kind: actionReplace, value: value} }

// InsertSelf reports that the node the caller already holds a reference to
// needs its own value set for the first time. It must be resolved to
// Insert(ref) via quantizeSelf before crossing a recursion boundary where
// the ref is not already known.
var InsertSelf = InsertAction{kind: actionInsertSelf}

// quantizeSelf turns an InsertSelf action into Insert(ref). Any other
// action passes through unchanged. This is how the recursive insert avoids
// needing parent pointers: each call level knows the ref its own returned
// node will occupy and can resolve InsertSelf before returning further up.
func (a InsertAction) quantizeSelf(ref NodeRef) InsertAction {
	if a.kind == actionInsertSelf {
		return Insert(ref)
	}
	return a
}
