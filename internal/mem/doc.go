// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Result buffers of the array kernels start on a 64-byte boundary so every
// lane block of the widest kernel stays within one cache line.
package mem
