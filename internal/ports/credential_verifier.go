package ports

import "context"

// Contract for checking login credentials.
type CredentialVerifier interface {
	// Report whether the pair matches. A mismatch is not an error.
	Verify(ctx context.Context, username, password string) (bool, error)
}
