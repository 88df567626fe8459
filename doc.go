// Package mmring provides a fixed-capacity circular byte buffer whose backing
// storage is a contiguous mapped region (heap memory, or a memory-mapped file
// shared across goroutines) with overwrite-oldest overflow semantics and
// explicit flush-on-demand durability.
//
// The library is organised into several files for clarity:
//
//	options.go     – region options & defaults
//	region.go      – Region interface, memory & file-backed regions
//	region_unix.go – mmap syscall bindings (unix only)
//	config.go      – sidecar layout config for file regions
//	buffer.go      – ring buffer core (write/read/peek)
//	cursor.go      – cursor sidecar persistence
//	locked.go      – mutex facade for concurrent callers
//	stats.go       – lightweight stats accessors
//	flush_close.go – flush & close helpers
//	errors.go      – sentinel errors
//
// See the README for usage examples.
package mmring
