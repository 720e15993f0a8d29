// Package internal wraps the cryptographic primitives used for seed
// derivation. This package wraps golang.org/x/crypto.
package internal

import "golang.org/x/crypto/blake2b"

// Blake2b512 computes a 512-bit BLAKE2b hash (64 bytes).
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}
