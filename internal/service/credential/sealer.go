package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const sealedPrefix = "sealed:v1:"

var hkdfInfo = []byte("dailydose credential v1")

// ErrUnsealable is returned when a sealed value cannot be opened with the
// configured secret, or when no secret is configured.
var ErrUnsealable = errors.New("credential: cannot unseal stored value")

// sealer encrypts stored credentials with XChaCha20-Poly1305. A nil sealer
// stores values as given.
type sealer struct {
	key []byte
}

func newSealer(secret string) (*sealer, error) {
	if secret == "" {
		return nil, nil
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, hkdfInfo), key); err != nil {
		return nil, fmt.Errorf("derive credential key: %w", err)
	}
	return &sealer{key: key}, nil
}

func isSealed(v string) bool {
	return strings.HasPrefix(v, sealedPrefix)
}

func (s *sealer) seal(plain string) (string, error) {
	if s == nil {
		return plain, nil
	}
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}
	out := aead.Seal(nonce, nonce, []byte(plain), nil)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(out), nil
}

// open returns stored as-is when it is not sealed.
func (s *sealer) open(stored string) (string, error) {
	if !isSealed(stored) {
		return stored, nil
	}
	if s == nil {
		return "", fmt.Errorf("%w: no secret configured", ErrUnsealable)
	}
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsealable, err)
	}
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", fmt.Errorf("%w: value too short", ErrUnsealable)
	}
	nonce, ct := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsealable, err)
	}
	return string(plain), nil
}
