package crypto

import (
	"crypto/sha256"
	"hash"
	"sync"
)

var sha256Pool = sync.Pool{New: func() interface{} {
	return sha256.New()
}}

// Sha256Hasher hashes with SHA-256, reusing hash states between calls.
type Sha256Hasher struct{}

// Hash returns the SHA-256 digest of data.
func (Sha256Hasher) Hash(data []byte) [32]byte {
	h, ok := sha256Pool.Get().(hash.Hash)
	if !ok {
		h = sha256.New()
	}
	defer sha256Pool.Put(h)
	h.Reset()

	var b [32]byte
	// #nosec G104
	h.Write(data)
	h.Sum(b[:0])

	return b
}
