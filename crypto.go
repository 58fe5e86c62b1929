package arithcoder

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
)

// ivSize is the AES block size used both as the CBC initialization vector
// length and as the chunk size plaintext is padded to.
const ivSize = aes.BlockSize

// EncryptionKeyFromPassphrase derives a 32-byte AES-256 key from an
// arbitrary-length passphrase supplied on the command line.
func EncryptionKeyFromPassphrase(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

// SealContainer wraps a compressed container's bytes in an AES-256-CBC
// envelope: a random IV followed by the ciphertext. A fresh IV is generated
// per call so encrypting the same payload twice does not leak equality.
func SealContainer(key, payload []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("arithcoder: seal container: %w", err)
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("arithcoder: seal container: %w", err)
	}

	padded := pkcs7Pad(payload, ivSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return append(iv, ciphertext...), nil
}

// OpenContainer reverses SealContainer, returning the original compressed
// container bytes.
func OpenContainer(key, sealed []byte) ([]byte, error) {
	if len(sealed) < ivSize {
		return nil, fmt.Errorf("arithcoder: open container: %w", io.ErrUnexpectedEOF)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("arithcoder: open container: %w", err)
	}

	iv, ciphertext := sealed[:ivSize], sealed[ivSize:]
	if len(ciphertext)%ivSize != 0 {
		return nil, fmt.Errorf("arithcoder: open container: ciphertext is not a multiple of the block size")
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("arithcoder: pkcs7 unpad: empty input")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > len(data) {
		return nil, fmt.Errorf("arithcoder: pkcs7 unpad: invalid padding")
	}
	return data[:len(data)-padLen], nil
}
