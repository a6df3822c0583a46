package pack

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	kerrors "packlift/internal/errors"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the cipher's initialization vector length in bytes.
	IVSize = 16
)

// cfb8 is an AES stream in 8-bit cipher feedback mode. The pack format uses
// CFB with a one-byte segment size, which the standard library's CFB
// implementation (128-bit feedback) cannot produce, so the feedback register
// is driven by hand.
type cfb8 struct {
	block   cipher.Block
	sr      []byte
	out     []byte
	decrypt bool
}

func (s *cfb8) XORKeyStream(dst, src []byte) {
	for i := range src {
		s.block.Encrypt(s.out, s.sr)
		in := src[i]
		dst[i] = in ^ s.out[0]
		copy(s.sr, s.sr[1:])
		if s.decrypt {
			s.sr[len(s.sr)-1] = in
		} else {
			s.sr[len(s.sr)-1] = dst[i]
		}
	}
}

func newCFB8(key, iv []byte, decrypt bool) (cipher.Stream, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, KeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidIVLength, IVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AES cipher: %w", err)
	}

	sr := make([]byte, block.BlockSize())
	copy(sr, iv)
	return &cfb8{
		block:   block,
		sr:      sr,
		out:     make([]byte, block.BlockSize()),
		decrypt: decrypt,
	}, nil
}

// NewCFB8Decrypter returns a stream that decrypts AES-256 CFB-8 ciphertext.
// The key must be exactly 32 bytes and the IV exactly 16 bytes.
func NewCFB8Decrypter(key, iv []byte) (cipher.Stream, error) {
	return newCFB8(key, iv, true)
}

// NewCFB8Encrypter returns the encrypting counterpart of NewCFB8Decrypter.
func NewCFB8Encrypter(key, iv []byte) (cipher.Stream, error) {
	return newCFB8(key, iv, false)
}

// keyMaterial slices a key string into the cipher key and IV windows used
// throughout the pack format: the first 32 bytes are the AES key and the
// first 16 of those same bytes are the IV. The IV reuse is a fixed property
// of the format and must not be "fixed" by deriving it independently.
func keyMaterial(key string) ([]byte, []byte, error) {
	raw := []byte(key)
	if len(raw) < KeySize {
		return nil, nil, fmt.Errorf("%w: got %d", kerrors.ErrKeyTooShort, len(raw))
	}
	return raw[:KeySize], raw[:IVSize], nil
}

// decryptInPlace decrypts buf with the CFB-8 stream keyed from key,
// mutating buf and preserving its length.
func decryptInPlace(buf []byte, key string) error {
	k, iv, err := keyMaterial(key)
	if err != nil {
		return err
	}

	stream, err := NewCFB8Decrypter(k, iv)
	if err != nil {
		return err
	}

	stream.XORKeyStream(buf, buf)
	return nil
}
