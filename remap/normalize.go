package remap

import "github.com/Alia5/cuamap/key"

// Swap exchanges two key identities on ingress. Every other key passes
// through unchanged. A Swap with A == B is the identity.
type Swap struct {
	A, B key.Code
}

// Normalize returns t with A and B exchanged.
func (s Swap) Normalize(t key.Transition) key.Transition {
	switch t.Key {
	case s.A:
		t.Key = s.B
	case s.B:
		t.Key = s.A
	}
	return t
}
