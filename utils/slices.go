package utils

// Fill sets every element of s to v.
func Fill[V any](s []V, v V) {
	for i := range s {
		s[i] = v
	}
}
