package dfa

const (
	// Golden ratio bit mixers.
	PHI_C32 = uint32(0x9e3779b9)
	PHI_C64 = uint64(0x9e3779b97f4a7c15)

	fnvOffset32 = uint32(2166136261)
	fnvPrime32  = uint32(16777619)
)

func mix(key int) int {
	return mix32(key)
}

// Final mixing step of MurmurHash3 (32 bit).
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// hashString is FNV-1a over the bytes of s.
func hashString(s string) uint32 {
	h := fnvOffset32
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	return h
}

// mixPhi scrambles k with the golden ratio constant, used to combine two hashes.
func mixPhi(k uint64) uint64 {
	h := k * PHI_C64
	return h ^ (h >> 32)
}
