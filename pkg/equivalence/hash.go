package equivalence

// ComputeHash folds the in-order traversal into a value in [0, 1000).
// Equivalent trees always share a hash.
func ComputeHash(e *Entry) int {
	hash := 1
	for _, value := range e.InOrder() {
		newValue := value + 2
		hash = (hash*newValue + newValue) % 1000
	}
	if hash < 0 {
		hash += 1000
	}
	return hash
}
