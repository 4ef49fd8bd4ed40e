package trie

// extensionNode is a compressed run of nibbles leading to a branch. prefix
// is always non-empty and child always addresses a branchNode — an
// extension with an empty prefix or a non-branch child would just be its
// child, so the trie never constructs one.
type extensionNode struct {
	prefix NibbleVec
	child  NodeRef
	h      cachedHash
}

func newExtensionNode(prefix NibbleVec, child NodeRef) *extensionNode {
	invariant(prefix.Len() > 0, "extension prefix must not be empty")
	return &extensionNode{prefix: prefix, child: child}
}

func (n *extensionNode) hash() *cachedHash { return &n.h }

func (n *extensionNode) get(a *arenas, path NibbleSlice) (ValueRef, bool) {
	if !path.SkipPrefix(n.prefix) {
		return 0, false
	}
	return a.getNode(n.child).get(a, path)
}

func (n *extensionNode) insert(a *arenas, path NibbleSlice, key, value []byte) (Node, InsertAction) {
	n.h.markDirty()

	if path.SkipPrefix(n.prefix) {
		childNode := a.removeNode(n.child)
		newChild, action := childNode.insert(a, path, key, value)
		newRef := a.insertNode(newChild)
		n.child = newRef
		return n, action.quantizeSelf(newRef)
	}

	p := path.CountPrefix(n.prefix)
	left, pivot, right := n.prefix.Split(p)

	branch := newBranchNode()
	if right.Len() == 0 {
		branch.children[pivot] = n.child
	} else {
		branch.children[pivot] = a.insertNode(newExtensionNode(right, n.child))
	}

	var action InsertAction
	if path.Len() > p {
		c := path.NibbleAt(p)
		leafRef := a.insertNode(newLeafNode(0))
		branch.children[c] = leafRef
		action = Insert(leafRef)
	} else {
		action = InsertSelf
	}

	if left.Len() == 0 {
		return branch, action
	}
	branchRef := a.insertNode(branch)
	action = action.quantizeSelf(branchRef)
	return newExtensionNode(left, branchRef), action
}
