// Package conv provides checked integer conversions.
//
// Buffer lengths and cursors are Go ints while page and byte counts are
// fixed-width unsigned values. Every crossing between the two goes through
// this package so an out-of-range value turns into an ErrOverflow error
// instead of a silently truncated offset.
package conv
