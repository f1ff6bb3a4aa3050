package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// StaticVerifier implements CredentialVerifier for a single configured
// account. Only a bcrypt hash of the password is kept in memory.
// MaxPasswordLen is the longest password bcrypt hashes without truncation.
const MaxPasswordLen = 72

type StaticVerifier struct {
	username string
	hash     []byte
}

func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	return NewStaticVerifierWithCost(username, password, bcrypt.DefaultCost)
}

// NewStaticVerifierWithCost lets tests trade hash strength for speed.
func NewStaticVerifierWithCost(username, password string, cost int) (*StaticVerifier, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("static verifier: username must not be empty")
	}
	if len(password) > MaxPasswordLen {
		return nil, fmt.Errorf("static verifier: password longer than %d bytes", MaxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("static verifier: hash password: %w", err)
	}

	return &StaticVerifier{username: username, hash: hash}, nil
}

func (v *StaticVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	// The hash comparison runs even when the username differs.
	passErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))

	// bcrypt ignores bytes past the limit, so a longer input never matches.
	return userOK && passErr == nil && len(password) <= MaxPasswordLen, nil
}
