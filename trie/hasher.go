package trie

import "github.com/carmen-mpt/trie/trie/rlp"

// nodeHasher computes and caches node hashes, dispatching on node kind via a
// type switch because the Node sum is closed. It walks the tree directly off
// arena references; there is no page eviction to account for here.
type nodeHasher struct {
	digest Digest
}

func newNodeHasher(digest Digest) *nodeHasher {
	return &nodeHasher{digest: digest}
}

// rootHash returns the trie's root hash, refreshing ref's cache (and,
// transitively, every dirty descendant's) if necessary. Unlike an ordinary
// child reference, the root is always hashed in full regardless of how
// short its encoding is: there is no parent list to embed it into.
func (h *nodeHasher) rootHash(a *arenas, ref NodeRef) Hash {
	if ref.IsNil() {
		return EmptyRootHash
	}
	node := a.getNode(ref)
	c := node.hash()
	if c.isDirty() {
		c.setHash(h.digest.Sum(h.encode(a, node, 0)))
	}
	var out Hash
	copy(out[:], c.bytes())
	return out
}

// childReference returns the RLP item a parent should embed for the node at
// ref: its raw encoding verbatim if that encoding is shorter than a hash
// (the Yellow Paper's inline-child case), otherwise its digest (Keccak-256
// by default).
// depth is the number of nibbles already consumed on the path from the root
// to ref.
func (h *nodeHasher) childReference(a *arenas, ref NodeRef, depth int) rlp.Item {
	if ref.IsNil() {
		return rlp.String{}
	}
	node := a.getNode(ref)
	c := node.hash()
	if c.isDirty() {
		encoded := h.encode(a, node, depth)
		if len(encoded) < HashLength {
			c.setInline(encoded)
		} else {
			c.setHash(h.digest.Sum(encoded))
		}
	}
	if c.isHashed() {
		return rlp.String{Str: c.bytes()}
	}
	return rlp.Encoded{Data: c.bytes()}
}

// encode produces node's RLP encoding, given that node is reached after
// consuming depth nibbles of whatever key(s) pass through it.
func (h *nodeHasher) encode(a *arenas, node Node, depth int) []byte {
	switch n := node.(type) {
	case *leafNode:
		return h.encodeLeaf(a, n, depth)
	case *extensionNode:
		return h.encodeExtension(a, n, depth)
	case *branchNode:
		return h.encodeBranch(a, n, depth)
	default:
		invariant(false, "unsupported node kind")
		return nil
	}
}

func (h *nodeHasher) encodeLeaf(a *arenas, n *leafNode, depth int) []byte {
	v := a.getValue(n.value)
	suffix := NibbleSlice{bytes: v.key, offset: depth}.Rest()
	items := []rlp.Item{
		rlp.String{Str: suffix.HexPrefix(hpLeaf)},
		rlp.String{Str: v.value},
	}
	return rlp.Encode(rlp.List{Items: items})
}

func (h *nodeHasher) encodeExtension(a *arenas, n *extensionNode, depth int) []byte {
	items := []rlp.Item{
		rlp.String{Str: n.prefix.HexPrefix(hpExtension)},
		h.childReference(a, n.child, depth+n.prefix.Len()),
	}
	return rlp.Encode(rlp.List{Items: items})
}

func (h *nodeHasher) encodeBranch(a *arenas, n *branchNode, depth int) []byte {
	items := make([]rlp.Item, 17)
	for i := 0; i < 16; i++ {
		items[i] = h.childReference(a, n.children[i], depth+1)
	}
	if n.hasValue() {
		items[16] = rlp.String{Str: a.getValue(n.value).value}
	} else {
		items[16] = rlp.String{}
	}
	return rlp.Encode(rlp.List{Items: items})
}
