// An implementation of the Data Encryption Standard (FIPS 46-3) operating on
// 64-bit blocks held as big-endian uint64 values. DES is broken as a modern
// cipher; this package exists to implement the historical tool's file
// format, not for protecting anything. CBC decryption chains on the raw
// ciphertext, so CBC files are not interchangeable with the original tool's.
package encryption

// BlockSize is the DES block size in bytes.
const BlockSize = 8

// numRounds is the number of Feistel rounds.
const numRounds = 16

// Cipher is an instance of DES using a particular key. The round key
// schedule is derived once at construction and is immutable afterward, so a
// Cipher is safe for concurrent block operations.
type Cipher struct {
	keys [numRounds]uint64
}

// NewCipher returns a Cipher for the given 64-bit key. Parity bits (every
// eighth bit) are ignored; they are discarded by the PC-1 selection.
func NewCipher(key uint64) *Cipher {
	return &Cipher{keys: scheduleFor(key)}
}

// computeRoundKeys derives the sixteen 48-bit round keys from a 64-bit key.
func computeRoundKeys(key uint64) [numRounds]uint64 {
	var keys [numRounds]uint64

	left, right := split56(permute(key, keyPC1, 64, 56))
	for i := 0; i < numRounds; i++ {
		left = rotL28(left, rotationSchedule[i])
		right = rotL28(right, rotationSchedule[i])

		keys[i] = permute(join56(left, right), keyPC2, 56, 48)
	}
	return keys
}

// Schedule returns a copy of the derived round keys, most useful for
// debug tracing.
func (c *Cipher) Schedule() [numRounds]uint64 {
	return c.keys
}

// EncryptBlock encrypts a single 64-bit block.
func (c *Cipher) EncryptBlock(block uint64) uint64 {
	return c.transform(block, false)
}

// DecryptBlock decrypts a single 64-bit block by consuming the round keys
// in reverse order.
func (c *Cipher) DecryptBlock(block uint64) uint64 {
	return c.transform(block, true)
}

func (c *Cipher) transform(block uint64, reverse bool) uint64 {
	left, right := split64(permute(block, initialPermutation, 64, 64))

	for i := 0; i < numRounds; i++ {
		key := c.keys[i]
		if reverse {
			key = c.keys[numRounds-1-i]
		}

		// f = P(S(E(R) ^ k)), masked to the declared widths so no
		// intermediate bits survive past their stage.
		expanded := permute(right, expansion, 32, 48) & mask48
		mixed := permute(substitute(expanded^key), roundPermutation, 32, 32) & mask32

		left, right = right, left^mixed
	}

	// The halves are swapped once more before the final permutation.
	return permute(join64(right, left), finalPermutation, 64, 64)
}

// substitute runs the eight 6-bit groups of a 48-bit value through the
// S-boxes, producing a 32-bit result.
func substitute(in uint64) uint64 {
	var out uint64
	for i := uint(1); i <= 8; i++ {
		b := extract6(in, i)
		out = out<<4 | sboxes[i-1][srow(b)][scol(b)]
	}
	return out
}
