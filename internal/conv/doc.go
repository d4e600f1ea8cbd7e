// Package conv provides overflow-checked integer conversions and shape
// arithmetic.
package conv
