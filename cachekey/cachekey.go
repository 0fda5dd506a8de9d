package cachekey

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

// Fingerprint returns a 256-bit digest of chromosome, stable across calls
// and processes for the same gene sequence. Two chromosomes with the same
// fingerprint are, with overwhelming probability, identical.
func Fingerprint(chromosome []int) [32]byte {
	buf := make([]byte, 8*len(chromosome))
	for i, gene := range chromosome {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(gene))
	}

	return blake3.Sum256(buf)
}
