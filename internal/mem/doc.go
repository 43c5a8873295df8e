// Package mem provides memory alignment utilities.
//
// # Aligned Allocation
//
// Backing buffers handed to an arena start on a cache-line boundary, so ranges
// granted at page-multiple offsets do too.
package mem
