package utils

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns how many elements equal item.
func Count[T comparable](slice []T, item T) int {
	n := 0
	for _, v := range slice {
		if v == item {
			n++
		}
	}
	return n
}

// AppendUnique appends item unless it is already present. The second result
// reports whether the slice grew.
func AppendUnique[T comparable](slice []T, item T) ([]T, bool) {
	if FindIndex(slice, item) >= 0 {
		return slice, false
	}
	return append(slice, item), true
}

// Clone returns a copy of slice that shares no backing array with it. A nil
// slice stays nil.
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	out := make([]T, len(slice))
	copy(out, slice)
	return out
}
