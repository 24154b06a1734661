// Package cryptox hashes and verifies account passwords with Argon2id.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/vmis/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// DeriveKey stretches password with salt using Argon2id
// (1 pass, 64 MiB, 4 lanes).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// HashPassword returns a fresh random salt and the derived key for password.
func HashPassword(password []byte) (hash, salt []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return DeriveKey(password, salt), salt
}

// VerifyPassword reports whether password matches hash under salt. The
// comparison takes constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	if len(hash) != KeySize {
		return false
	}
	return subtle.ConstantTimeCompare(DeriveKey(password, salt), hash) == 1
}
