package trie

import "testing"

func TestNibble_Print(t *testing.T) {
	tests := []struct {
		value Nibble
		print string
	}{
		{Nibble(0), "0"}, {Nibble(1), "1"}, {Nibble(9), "9"},
		{Nibble(10), "a"}, {Nibble(15), "f"},
		{Nibble(16), "?"}, {Nibble(255), "?"},
	}
	for _, test := range tests {
		if got, want := test.value.String(), test.print; got != want {
			t.Errorf("invalid print, got %s, wanted %s", got, want)
		}
	}
}

func TestNibbleVec_AppendAndAt(t *testing.T) {
	var v NibbleVec
	for i := 0; i < 5; i++ {
		v.Append(Nibble(i))
	}
	if got, want := v.Len(), 5; got != want {
		t.Fatalf("wrong length, got %d, wanted %d", got, want)
	}
	for i := 0; i < 5; i++ {
		if got, want := v.At(i), Nibble(i); got != want {
			t.Errorf("wrong nibble at %d, got %v, wanted %v", i, got, want)
		}
	}
}

func TestNibbleVec_Split(t *testing.T) {
	v := NibbleVecFromNibbles([]Nibble{1, 2, 3, 4, 5})
	left, pivot, right := v.Split(2)
	if got, want := left.String(), "12"; got != want {
		t.Errorf("wrong left, got %s, wanted %s", got, want)
	}
	if got, want := pivot, Nibble(3); got != want {
		t.Errorf("wrong pivot, got %v, wanted %v", got, want)
	}
	if got, want := right.String(), "45"; got != want {
		t.Errorf("wrong right, got %s, wanted %s", got, want)
	}
}

func TestNibbleVec_HexPrefix(t *testing.T) {
	tests := []struct {
		nibbles []Nibble
		kind    hpKind
		want    []byte
	}{
		// even-length extension path.
		{[]Nibble{1, 2, 3, 4}, hpExtension, []byte{0x00, 0x12, 0x34}},
		// odd-length extension path.
		{[]Nibble{1, 2, 3}, hpExtension, []byte{0x11, 0x23}},
		// even-length leaf path.
		{[]Nibble{1, 2, 3, 4}, hpLeaf, []byte{0x20, 0x12, 0x34}},
		// odd-length leaf path.
		{[]Nibble{1, 2, 3}, hpLeaf, []byte{0x31, 0x23}},
		// empty path.
		{nil, hpExtension, []byte{0x00}},
	}
	for _, test := range tests {
		v := NibbleVecFromNibbles(test.nibbles)
		got := v.HexPrefix(test.kind)
		if string(got) != string(test.want) {
			t.Errorf("wrong HP encoding for %v/%v, got %x, wanted %x", test.nibbles, test.kind, got, test.want)
		}
	}
}

func TestNibbleSlice_PeekNextSkip(t *testing.T) {
	s := NewNibbleSlice([]byte{0x12, 0x34})
	if got, want := s.Len(), 4; got != want {
		t.Fatalf("wrong length, got %d, wanted %d", got, want)
	}
	n, ok := s.Peek()
	if !ok || n != Nibble(1) {
		t.Fatalf("wrong peek, got %v/%v", n, ok)
	}
	n, ok = s.Next()
	if !ok || n != Nibble(1) {
		t.Fatalf("wrong next, got %v/%v", n, ok)
	}
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("wrong length after next, got %d, wanted %d", got, want)
	}

	if ok := s.SkipPrefix(NibbleVecFromNibbles([]Nibble{2, 3})); !ok {
		t.Fatalf("expected prefix to match")
	}
	if got, want := s.Len(), 1; got != want {
		t.Fatalf("wrong length after skip, got %d, wanted %d", got, want)
	}

	if ok := s.SkipPrefix(NibbleVecFromNibbles([]Nibble{5})); ok {
		t.Fatalf("expected prefix mismatch to fail")
	}
}

func TestNibbleSlice_CountPrefix(t *testing.T) {
	s := NewNibbleSlice([]byte{0x12, 0x35})
	p := NibbleVecFromNibbles([]Nibble{1, 2, 3, 4})
	if got, want := s.CountPrefix(p), 3; got != want {
		t.Fatalf("wrong common prefix length, got %d, wanted %d", got, want)
	}
	// CountPrefix must not advance s.
	if got, want := s.Len(), 4; got != want {
		t.Fatalf("CountPrefix must not mutate s, length got %d, wanted %d", got, want)
	}
}

func TestNibbleSlice_CmpRestAndCommonPrefixLen_AtDepth(t *testing.T) {
	// "doe" and "dog" share the first 5 nibbles (d, o, and the high nibble
	// of 'e'/'g'; they differ at nibble index 5): walk both down to depth 2 the
	// way a branch descent would and check that CmpRest/CommonPrefixLen
	// agree with a full-key comparison once aligned to that depth.
	doe := []byte("doe")
	dog := []byte("dog")

	s := NewNibbleSlice(doe)
	s.Next()
	s.Next() // depth 2, aligned past the shared "d" byte nibbles.

	if s.CmpRest(doe) != true {
		t.Errorf("key must compare equal to itself at any depth")
	}
	if s.CmpRest(dog) != false {
		t.Errorf("distinct keys must not compare equal")
	}

	// "doe" and "dog" differ at nibble 5 (low nibble of the third byte:
	// 'e'=0x65 vs 'g'=0x67), so from depth 2 they share 3 more nibbles.
	if got, want := s.CommonPrefixLen(dog), 3; got != want {
		t.Errorf("wrong common prefix length at depth, got %d, wanted %d", got, want)
	}
}

func TestNibbleSlice_SplitToVecAndPeekVec(t *testing.T) {
	s := NewNibbleSlice([]byte{0x12, 0x34})
	cp := s.PeekVec(2)
	if got, want := cp.String(), "12"; got != want {
		t.Fatalf("wrong PeekVec result, got %s, wanted %s", got, want)
	}
	if got, want := s.Len(), 4; got != want {
		t.Fatalf("PeekVec must not advance s, got len %d, wanted %d", got, want)
	}

	v := s.SplitToVec(3)
	if got, want := v.String(), "123"; got != want {
		t.Fatalf("wrong SplitToVec result, got %s, wanted %s", got, want)
	}
	if got, want := s.Len(), 1; got != want {
		t.Fatalf("SplitToVec must advance s, got len %d, wanted %d", got, want)
	}
}
