package hash

import (
	stdhash "hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Pool is a global blake2b-256 hasher pool. It is meant to amortize allocations
// of hashers over time by allowing clients to reuse them.
var pool = &sync.Pool{
	New: func() any {
		h, err := blake2b.New256(nil)
		if err != nil {
			panic(err)
		}
		return h
	},
}

// GetHasher will get a blake2b-256 hasher from the pool.
// It may or may not allocate a new one.
func GetHasher() stdhash.Hash {
	return pool.Get().(stdhash.Hash)
}

// PutHasher resets the hasher and returns it back to the pool.
func PutHasher(hasher stdhash.Hash) {
	hasher.Reset()
	pool.Put(hasher)
}
