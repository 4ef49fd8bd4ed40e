// Package trie implements an in-memory, authenticated Modified Merkle
// Patricia Trie: a path-compressed radix-16 trie over byte-string keys
// whose root hash matches the Ethereum Yellow Paper's trie construction.
package trie

// Option configures a Trie at construction time.
type Option func(*Trie)

// WithDigest overrides the cryptographic digest a Trie hashes nodes with.
// The default is Keccak256Digest, which is required to match the published
// Ethereum test vectors; a non-default digest will not.
func WithDigest(d Digest) Option {
	return func(t *Trie) { t.hasher = newNodeHasher(d) }
}

// Trie is a single mutable in-memory trie. The zero value is not usable;
// construct one with New. A Trie is not safe for concurrent use.
type Trie struct {
	arenas *arenas
	root   NodeRef
	size   int
	hasher *nodeHasher
}

// New returns an empty Trie.
func New(opts ...Option) *Trie {
	t := &Trie{arenas: newArenas(), hasher: newNodeHasher(Keccak256Digest{})}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsEmpty reports whether the trie holds no entries.
func (t *Trie) IsEmpty() bool { return t.size == 0 }

// Len returns the number of (key, value) entries in the trie.
func (t *Trie) Len() int { return t.size }

// Get looks up key and reports whether it is present.
func (t *Trie) Get(key []byte) ([]byte, bool) {
	if t.root.IsNil() {
		return nil, false
	}
	ref, ok := t.arenas.getNode(t.root).get(t.arenas, NewNibbleSlice(key))
	if !ok {
		return nil, false
	}
	return t.arenas.getValue(ref).value, true
}

// Insert adds or overwrites the entry for key. If key was already present,
// its previous value is returned and the trie's size is unchanged;
// otherwise the returned value is nil and the trie grows by one entry.
func (t *Trie) Insert(key, value []byte) []byte {
	if t.root.IsNil() {
		valueRef := t.arenas.insertValue(valueSlot{key: key, value: value})
		t.root = t.arenas.insertNode(newLeafNode(valueRef))
		t.size++
		return nil
	}

	node := t.arenas.removeNode(t.root)
	newRoot, action := node.insert(t.arenas, NewNibbleSlice(key), key, value)
	newRef := t.arenas.insertNode(newRoot)
	t.root = newRef
	action = action.quantizeSelf(newRef)

	switch action.kind {
	case actionReplace:
		slot := t.arenas.getValue(action.value)
		prev := slot.value
		slot.key = key
		slot.value = value
		return prev

	case actionInsert:
		valueRef := t.arenas.insertValue(valueSlot{key: key, value: value})
		switch target := t.arenas.getNode(action.node).(type) {
		case *leafNode:
			target.value = valueRef
		case *branchNode:
			target.value = valueRef
		default:
			invariant(false, "insert action targets a node kind that cannot hold a value")
		}
		t.size++
		return nil

	default:
		invariant(false, "unresolved insert action reached the trie facade")
		return nil
	}
}

// Hash returns the trie's root hash, recomputing any part of the tree whose
// cached hash was invalidated by a prior Insert. Calling Hash repeatedly
// without an intervening Insert is idempotent and cheap: every node's hash
// is cached until the subtree beneath it changes.
func (t *Trie) Hash() Hash {
	return t.hasher.rootHash(t.arenas, t.root)
}

// Check walks the trie verifying its structural invariants: extension
// prefixes are never empty, an extension's child is always a branch, and
// every non-root branch has at least two occupants. It panics on the first
// violation found, since a violation can only be a programming error in
// this package, never a consequence of caller input.
func (t *Trie) Check() {
	if t.root.IsNil() {
		invariant(t.size == 0, "non-empty trie with a nil root")
		return
	}
	count := t.checkNode(t.arenas.getNode(t.root), true)
	invariant(count == t.size, "leaf and branch value count does not match trie size")
}

func (t *Trie) checkNode(node Node, isRoot bool) int {
	switch n := node.(type) {
	case *leafNode:
		return 1

	case *extensionNode:
		invariant(n.prefix.Len() > 0, "extension node has an empty prefix")
		child := t.arenas.getNode(n.child)
		_, isBranch := child.(*branchNode)
		invariant(isBranch, "extension node does not point at a branch")
		return t.checkNode(child, false)

	case *branchNode:
		count := 0
		occupants := 0
		for _, c := range n.children {
			if c.IsNil() {
				continue
			}
			occupants++
			count += t.checkNode(t.arenas.getNode(c), false)
		}
		if n.hasValue() {
			occupants++
			count++
		}
		invariant(isRoot || occupants >= 2, "branch node has fewer than two occupants")
		return count

	default:
		invariant(false, "unsupported node kind")
		return 0
	}
}
