// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLength   = 16

	// resetTokenBytes yields a 64-character base64url token.
	resetTokenBytes = 48
)

// GenerateSalt returns a new random per-account salt, base64-encoded for
// storage in its own column. Keeping the salt separate from the hash lets the
// reset flow derive a pending hash with the account's existing salt.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// HashPassword derives an argon2id hash of password using the stored salt.
// The same (password, salt) pair always yields the same hash.
func HashPassword(password, salt string) (string, error) {
	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		rawSalt,
		argonTime,
		argonMemory,
		argonThreads,
		argonKeyLen,
	)

	return base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword re-derives the hash from the stored salt and compares it
// constant-time against the stored hash.
func VerifyPassword(password, salt, storedHash string) (bool, error) {
	derived, err := HashPassword(password, salt)
	if err != nil {
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(derived), []byte(storedHash)) == 1 {
		return true, nil
	}

	return false, nil
}

var (
	dummySalt string
	dummyHash string
)

func init() {
	salt, err := GenerateSalt()
	if err != nil {
		panic(fmt.Sprintf("security: failed to generate dummy salt: %v", err))
	}
	hash, err := HashPassword("dummy_password_for_timing_attack_prevention", salt)
	if err != nil {
		panic(fmt.Sprintf("security: failed to generate dummy hash: %v", err))
	}
	dummySalt = salt
	dummyHash = hash
}

// VerifyPasswordTimingSafe behaves like VerifyPassword but always performs a
// full derivation even when the account does not exist, so unknown emails
// cannot be distinguished by response time. Pass nil salt/hash for a missing
// account; the result is then always false.
func VerifyPasswordTimingSafe(password string, salt, storedHash *string) (bool, error) {
	verifySalt := dummySalt
	verifyHash := dummyHash
	if salt != nil && storedHash != nil && *salt != "" {
		verifySalt = *salt
		verifyHash = *storedHash
	}

	valid, err := VerifyPassword(password, verifySalt, verifyHash)

	if salt == nil || storedHash == nil || *salt == "" {
		return false, nil
	}

	return valid, err
}

// GenerateResetToken returns a high-entropy single-use token of at least 64
// characters for password reset and login confirmation links.
func GenerateResetToken() (string, error) {
	return GenerateSecureToken(resetTokenBytes)
}

func GenerateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
