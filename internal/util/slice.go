package util

// Intersect returns the elements of b that also occur in a, in b's order.
// Duplicates in b are preserved. Never returns nil.
func Intersect[T comparable](a, b []T) []T {
	result := []T{}
	if len(a) == 0 || len(b) == 0 {
		return result
	}

	set := make(map[T]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}

	for _, v := range b {
		if _, ok := set[v]; ok {
			result = append(result, v)
		}
	}
	return result
}
