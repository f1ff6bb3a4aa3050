package services

import (
	"context"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/ports"
	"fmt"
)

// Login checks the credentials and returns the notice to show under the
// login form. A mismatch is a notice, not an error.
func Login(ctx context.Context, verifier ports.CredentialVerifier, creds domain.LoginCredentials) ([]domain.Notice, error) {
	ok, err := verifier.Verify(ctx, creds.Username, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("login: verify credentials: %w", err)
	}
	if !ok {
		return []domain.Notice{{Level: domain.NoticeError, Text: MsgInvalidCredentials}}, nil
	}
	return []domain.Notice{loggedIn(creds.Username)}, nil
}

// Register only compares the two passwords; nothing is stored.
func Register(reg domain.Registration) []domain.Notice {
	if !reg.PasswordsMatch() {
		return []domain.Notice{{Level: domain.NoticeError, Text: MsgPasswordMismatch}}
	}
	return []domain.Notice{
		{Level: domain.NoticeSuccess, Text: MsgRegistered},
		welcome(reg.NewUsername),
	}
}
