package antlr

// Structural hashing for configs, contexts, and DFA interning keys.
// The mix is a murmur-style finalizer; collisions are resolved by the
// equality probes in the hash-bucketed maps that consume these values.

const (
	hashSeed  = 0x9e3779b97f4a7c15
	hashMulC1 = 0xcc9e2d51
	hashMulC2 = 0x1b873593
)

func hashInit(seed uint64) uint64 {
	return seed ^ hashSeed
}

func hashUpdate(h uint64, value uint64) uint64 {
	k := value
	k *= hashMulC1
	k = (k << 15) | (k >> 49)
	k *= hashMulC2
	h ^= k
	h = (h << 13) | (h >> 51)
	return h*5 + 0xe6546b64
}

func hashFinish(h uint64, count int) uint64 {
	h ^= uint64(count) * 8
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
