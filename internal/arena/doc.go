// Package arena provides the page-granularity bump allocator that backs
// staticalloc.
//
// An Arena owns one fixed-length byte buffer and a cursor. Requests are
// denominated in pages and are served by advancing the cursor; nothing is ever
// handed back. The process-wide instance returned by Static draws from a
// 32 MiB array with static storage duration, so it works without any heap
// growth mechanism.
//
// # Features
//
//   - One bounds check shared by every allocation entry point
//   - Grants ordered by lock acquisition, never overlapping
//   - Optional memory budget consulted before a grant
//   - Static, borrowed or anonymously mapped backing buffers
//
// # Safety
//
// Allocation failures are reported as errors that match ErrAlloc; the
// allocation path never panics. Get returns nil for offsets that were never
// handed out.
package arena
