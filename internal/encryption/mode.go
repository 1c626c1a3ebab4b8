package encryption

// DefaultIV is the fixed initialization vector used for CBC. There is
// deliberately no way to override it from the command line; files are only
// interchangeable with tools that bake in the same vector.
const DefaultIV = 0xFB3C718924605AED

// Mode applies the block transform across a sequence of blocks. A Mode
// instance carries the chaining state for one pass over one file, so it must
// be used for a single direction and then discarded.
type Mode interface {
	// Encrypt encrypts the next plaintext block.
	Encrypt(block uint64) uint64
	// Decrypt decrypts the next ciphertext block.
	Decrypt(block uint64) uint64
}

// ecb transforms every block independently.
type ecb struct {
	cipher *Cipher
}

// NewECB returns an electronic codebook mode over c.
func NewECB(c *Cipher) Mode {
	return &ecb{cipher: c}
}

func (m *ecb) Encrypt(block uint64) uint64 {
	return m.cipher.EncryptBlock(block)
}

func (m *ecb) Decrypt(block uint64) uint64 {
	return m.cipher.DecryptBlock(block)
}

// cbc chains each block into the next through a single register seeded with
// the IV. During decryption the register holds the previous raw ciphertext
// block, not the recovered plaintext.
type cbc struct {
	cipher *Cipher
	prev   uint64
}

// NewCBC returns a cipher block chaining mode over c seeded with iv.
func NewCBC(c *Cipher, iv uint64) Mode {
	return &cbc{cipher: c, prev: iv}
}

func (m *cbc) Encrypt(block uint64) uint64 {
	encrypted := m.cipher.EncryptBlock(block ^ m.prev)
	m.prev = encrypted
	return encrypted
}

func (m *cbc) Decrypt(block uint64) uint64 {
	decrypted := m.cipher.DecryptBlock(block) ^ m.prev
	m.prev = block
	return decrypted
}
