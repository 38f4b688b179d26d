package gateway

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

func digestBlake3_256(message []byte) []byte {
	sum := blake3.Sum256(message)

	return sum[:]
}

func digestBlake2b256(message []byte) ([]byte, error) {
	sum := blake2b.Sum256(message)

	return sum[:], nil
}

func digestBlake2s256(message []byte) ([]byte, error) {
	sum := blake2s.Sum256(message)

	return sum[:], nil
}

func digestSHA3_256(message []byte) []byte {
	sum := sha3.Sum256(message)

	return sum[:]
}

func digestSHA2_256(message []byte) []byte {
	sum := sha256.Sum256(message)

	return sum[:]
}
