package trie

// leafNode terminates a path: it holds a reference to the value slot
// carrying the full (key, value) pair it represents.
type leafNode struct {
	value ValueRef
	h     cachedHash
}

func newLeafNode(value ValueRef) *leafNode {
	return &leafNode{value: value}
}

func (n *leafNode) hash() *cachedHash { return &n.h }

func (n *leafNode) get(a *arenas, path NibbleSlice) (ValueRef, bool) {
	stored := a.getValue(n.value)
	if path.CmpRest(stored.key) {
		return n.value, true
	}
	return 0, false
}

// insert implements the three-way split a leaf undergoes when a new key
// diverges from its stored one: the path may be a prefix of the stored key,
// the stored key may be a prefix of the path, or neither. path is the lookup
// key's remaining nibbles at this leaf's depth; key/value are the raw bytes
// being inserted.
func (n *leafNode) insert(a *arenas, path NibbleSlice, key, value []byte) (Node, InsertAction) {
	n.h.markDirty()

	stored := a.getValue(n.value)
	if path.CmpRest(stored.key) {
		return n, Replace(n.value)
	}

	p := path.CommonPrefixLen(stored.key)
	storedView := path.atDepth(stored.key)
	pathLen, storedLen := path.Len(), storedView.Len()

	branch := newBranchNode()
	var action InsertAction

	switch {
	case pathLen == p:
		// path is a proper prefix of the stored key: the new entry
		// terminates at the branch; the existing leaf moves one level
		// down, keyed by its next nibble.
		branch.children[storedView.NibbleAt(p)] = a.insertNode(n)
		action = InsertSelf
	case storedLen == p:
		// the stored key is a proper prefix of path: the existing leaf's
		// value terminates at the branch; a fresh leaf holds the new entry.
		newLeafRef := a.insertNode(newLeafNode(0))
		branch.children[path.NibbleAt(p)] = newLeafRef
		branch.value = n.value
		action = Insert(newLeafRef)
	default:
		// neither key is a prefix of the other: two sibling leaves.
		newLeafRef := a.insertNode(newLeafNode(0))
		branch.children[storedView.NibbleAt(p)] = a.insertNode(n)
		branch.children[path.NibbleAt(p)] = newLeafRef
		action = Insert(newLeafRef)
	}

	if p == 0 {
		return branch, action
	}

	prefix := path.PeekVec(p)
	branchRef := a.insertNode(branch)
	action = action.quantizeSelf(branchRef)
	return newExtensionNode(prefix, branchRef), action
}
