package frame

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/hallowell/descrypt/internal/encryption"
)

var (
	// ErrInputFile is returned when the input path cannot be read.
	ErrInputFile = errors.New("unable to open file for read")
	// ErrOutputFile is returned when the output path cannot be written.
	ErrOutputFile = errors.New("unable to open file for write")
)

// EncryptFile reads inPath in its entirety, encrypts it under mode, and
// writes the framed ciphertext to outPath. The size cap is enforced before
// the input is read and the output file is not created until the ciphertext
// is fully assembled, so failures never leave a partial output behind.
func EncryptFile(inPath, outPath string, mode encryption.Mode, rng *rand.Rand) error {
	info, err := os.Stat(inPath)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrInputFile, inPath, err)
	}
	if info.Size() > MaxPlaintextLen {
		return ErrTooLarge
	}

	plaintext, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrInputFile, inPath, err)
	}

	ciphertext, err := Encrypt(plaintext, mode, rng)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, ciphertext, 0644); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputFile, outPath, err)
	}
	return nil
}

// DecryptFile reads the framed ciphertext at inPath, decrypts it under mode,
// and writes the recovered plaintext to outPath. Alignment and size are
// validated before any output is produced.
func DecryptFile(inPath, outPath string, mode encryption.Mode) error {
	ciphertext, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrInputFile, inPath, err)
	}

	plaintext, err := Decrypt(ciphertext, mode)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, plaintext, 0644); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputFile, outPath, err)
	}
	return nil
}
