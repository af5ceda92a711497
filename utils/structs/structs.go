// Package structs implements helpers to generalize vectors of numeric values, as well as their serialization.
package structs

// Word is the set of numeric types that are serialized on 8 bytes.
type Word interface {
	float64 | uint64 | int64 | int
}
