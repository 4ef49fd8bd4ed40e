package trie

import "golang.org/x/crypto/sha3"

// HashLength is the byte length of the digest this package hashes nodes
// with. The trie's inline-vs-hashed child boundary is defined in terms of
// this constant: a node encoding shorter than HashLength bytes is embedded
// verbatim, otherwise it is replaced by its digest.
const HashLength = 32

// Hash is the fixed-size digest produced by a Digest. For the canonical
// Ethereum wire format this is a Keccak-256 hash.
type Hash [HashLength]byte

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Digest is the cryptographic primitive the trie is parameterized over.
// Any fixed HashLength-byte-output digest can be plugged in; the wire
// format and all published test vectors assume Keccak-256.
type Digest interface {
	// Sum returns the digest of data.
	Sum(data []byte) Hash
}

// Keccak256Digest is the default Digest, matching the Ethereum Yellow
// Paper's trie hashing. EmptyRootHash below is Keccak256Digest applied to
// the RLP encoding of the empty string, 0x80.
type Keccak256Digest struct{}

func (Keccak256Digest) Sum(data []byte) Hash {
	var out Hash
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

// EmptyRootHash is the root hash of a trie with no entries: the Keccak-256
// hash of the RLP encoding of the empty byte string (a single 0x80 byte).
var EmptyRootHash = Keccak256Digest{}.Sum([]byte{0x80})
