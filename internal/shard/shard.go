package shard

import (
	"runtime"
)

// DefaultCount is the number of shards used when the caller does not pick one.
func DefaultCount() int {
	return runtime.GOMAXPROCS(0) * 16
}

// Index maps hash onto [0, n) without using the modulo operator (~4x faster).
// Reference: https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func Index(hash uint32, n int) int {
	return int((uint64(hash) * uint64(n)) >> 32) //nolint:gosec
}
