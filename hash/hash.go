// Package hash implements the hashers used by substrate runtimes for storage keys,
// extrinsic hashes and address checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	// Size is the size of a blake2b-256 digest.
	Size = blake2b.Size256
)

// Sum is blake2b-256 of the concatenated chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hh := GetHasher()
	defer PutHasher(hh)
	for _, chunk := range chunks {
		hh.Write(chunk)
	}
	hh.Sum(rst[:0])
	return rst
}

// Blake2b128 returns the 16 byte blake2b digest of data.
func Blake2b128(data []byte) (rst [16]byte) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// only fails for invalid size or key length
		panic(err)
	}
	h.Write(data)
	h.Sum(rst[:0])
	return rst
}

// Blake2b256 returns the 32 byte blake2b digest of data.
func Blake2b256(data []byte) [32]byte {
	return Sum(data)
}

// Blake2b512 returns the 64 byte blake2b digest of data.
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// Twox64 is xxhash64 with seed 0, little endian.
func Twox64(data []byte) (rst [8]byte) {
	twox(rst[:], data)
	return rst
}

// Twox128 is the concatenation of xxhash64 with seeds 0 and 1.
func Twox128(data []byte) (rst [16]byte) {
	twox(rst[:], data)
	return rst
}

// Twox256 is the concatenation of xxhash64 with seeds 0 to 3.
func Twox256(data []byte) (rst [32]byte) {
	twox(rst[:], data)
	return rst
}

func twox(dst, data []byte) {
	for seed := 0; seed < len(dst)/8; seed++ {
		d := xxhash.NewWithSeed(uint64(seed))
		d.Write(data)
		binary.LittleEndian.PutUint64(dst[seed*8:], d.Sum64())
	}
}
