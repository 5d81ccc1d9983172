package security

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// KeyVerifier checks a presented API credential.
type KeyVerifier interface {
	Verify(presented string) bool
}

// StaticKeyVerifier verifies the X-API-Key header against the configured
// credential. With a bcrypt hash configured the plain key is ignored and
// verification runs against the hash, so the secret never has to live in
// the environment in clear text.
type StaticKeyVerifier struct {
	key  string
	hash string
}

func NewStaticKeyVerifier(key, bcryptHash string) *StaticKeyVerifier {
	return &StaticKeyVerifier{
		key:  key,
		hash: bcryptHash,
	}
}

func (v *StaticKeyVerifier) Verify(presented string) bool {
	if presented == "" {
		return false
	}
	if v.hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.key), []byte(presented)) == 1
}

// HashAPIKey produces a bcrypt hash suitable for API_KEY_BCRYPT_HASH.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
