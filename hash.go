package setonce

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// HashString is a hash function for string-keyed Maps.
func HashString(s string) uint32 {
	hash := blake3.New()
	_, _ = hash.WriteString(s)
	var sum [4]byte
	return binary.LittleEndian.Uint32(hash.Sum(sum[:0]))
}

// HashBytes is HashString for byte slices.
func HashBytes(b []byte) uint32 {
	sum := blake3.Sum256(b)
	return binary.LittleEndian.Uint32(sum[:4])
}

// HashUint64 is a hash function for integer-keyed Maps.
func HashUint64(data uint64) uint32 {
	// Mix the bits using multiplication by a prime and XOR
	hash := uint32(data) ^ uint32(data>>32) // #nosec G115 we explicitly want to truncate the uint64 to uint32
	hash = hash * 0x9e3779b1                // Golden ratio
	return hash
}
