package equivalence

import "slices"

// Compare reports whether both entries hold exactly the same values. Hash
// must already be set on both.
func Compare(e1, e2 *Entry) bool {
	// Check if hashes differ, indicating trees are not equivalent
	if e1.Hash != e2.Hash {
		return false
	}
	return slices.Equal(e1.InOrder(), e2.InOrder())
}
