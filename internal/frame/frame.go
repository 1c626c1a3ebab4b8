// Package frame implements the length-preserving file format wrapped around
// the block cipher. Every file starts with one encrypted header block whose
// low 32 bits carry the plaintext byte count; the final data block is padded
// out with random bytes, and the header is what lets the decryptor strip
// that padding exactly.
package frame

import (
	"encoding/binary"
	"errors"
	"math/rand"

	"github.com/hallowell/descrypt/internal/encryption"
)

// MaxPlaintextLen is the largest input the format can describe. The header
// reserves 32 bits for the length but the sign bit stays clear, so files of
// 2GiB or more are refused.
const MaxPlaintextLen = 1<<31 - 1

var (
	// ErrTooLarge is returned for inputs the header length field cannot hold.
	ErrTooLarge = errors.New("input file too large, must be less than 2GiB")
	// ErrMisaligned is returned when a ciphertext's payload is not a whole
	// number of blocks.
	ErrMisaligned = errors.New("input file not 64-bit aligned")
	// ErrBadHeader is returned when the decrypted header describes a length
	// that does not fit the payload, which usually means the wrong key or a
	// file this tool did not produce.
	ErrBadHeader = errors.New("header length inconsistent with payload")
)

// Encrypt frames and encrypts plaintext under mode, returning the ciphertext:
// one header block followed by ceil(len/8) data blocks. Random bits for the
// header and tail padding are drawn from rng.
func Encrypt(plaintext []byte, mode encryption.Mode, rng *rand.Rand) ([]byte, error) {
	n := len(plaintext)
	if n > MaxPlaintextLen {
		return nil, ErrTooLarge
	}

	out := make([]byte, 0, (n+7)/encryption.BlockSize*encryption.BlockSize+encryption.BlockSize)

	// The high half of the header is random so that equal-length files do
	// not share a known first block.
	header := uint64(rng.Uint32())<<32 | uint64(n)
	out = appendBlock(out, mode.Encrypt(header))

	for off := 0; off < n; off += encryption.BlockSize {
		var block uint64
		if n-off >= encryption.BlockSize {
			block = binary.BigEndian.Uint64(plaintext[off:])
		} else {
			// Short tail: plaintext occupies the high bytes, random
			// padding fills the rest.
			for i, b := range plaintext[off:] {
				block |= uint64(b) << (56 - 8*i)
			}
			for i := n - off; i < encryption.BlockSize; i++ {
				block |= uint64(rng.Intn(256)) << (56 - 8*i)
			}
		}
		out = appendBlock(out, mode.Encrypt(block))
	}

	return out, nil
}

// Decrypt reverses Encrypt: it validates the ciphertext's shape, recovers
// the plaintext length from the header block, and truncates the tail padding
// from the final block.
func Decrypt(ciphertext []byte, mode encryption.Mode) ([]byte, error) {
	if len(ciphertext) < encryption.BlockSize {
		return nil, ErrMisaligned
	}
	payload := len(ciphertext) - encryption.BlockSize
	if payload%encryption.BlockSize != 0 {
		return nil, ErrMisaligned
	}
	if payload > MaxPlaintextLen {
		return nil, ErrTooLarge
	}

	header := mode.Decrypt(binary.BigEndian.Uint64(ciphertext))
	length := int64(header & 0xFFFFFFFF)

	padding := int64(payload) - length
	if padding < 0 || padding >= encryption.BlockSize {
		return nil, ErrBadHeader
	}

	out := make([]byte, 0, payload)
	blocks := payload / encryption.BlockSize
	for i := 0; i < blocks; i++ {
		block := mode.Decrypt(binary.BigEndian.Uint64(ciphertext[(i+1)*encryption.BlockSize:]))

		var buf [encryption.BlockSize]byte
		binary.BigEndian.PutUint64(buf[:], block)

		if i == blocks-1 {
			out = append(out, buf[:encryption.BlockSize-int(padding)]...)
		} else {
			out = append(out, buf[:]...)
		}
	}

	return out, nil
}

// appendBlock serializes a block big-endian so that a reader treating the
// file as a stream of 8-byte big-endian values reconstructs the in-memory
// block values.
func appendBlock(out []byte, block uint64) []byte {
	var buf [encryption.BlockSize]byte
	binary.BigEndian.PutUint64(buf[:], block)
	return append(out, buf[:]...)
}
