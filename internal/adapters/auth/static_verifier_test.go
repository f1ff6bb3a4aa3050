package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifierVerify(t *testing.T) {
	v, err := NewStaticVerifierWithCost("admin", "1234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"match", "admin", "1234", true},
		{"wrong password", "admin", "12345", false},
		{"wrong username", "Admin", "1234", false},
		{"both wrong", "x", "y", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Verify(context.Background(), tt.username, tt.password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Verify(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestStaticVerifierKeepsOnlyHash(t *testing.T) {
	v, err := NewStaticVerifierWithCost("admin", "1234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v.hash) == "1234" {
		t.Fatal("password stored in clear text")
	}
	if cost, err := bcrypt.Cost(v.hash); err != nil || cost != bcrypt.MinCost {
		t.Fatalf("hash cost = %d (%v), want %d", cost, err, bcrypt.MinCost)
	}
}

func TestStaticVerifierRejectsEmptyUsername(t *testing.T) {
	if _, err := NewStaticVerifierWithCost("  ", "1234", bcrypt.MinCost); err == nil {
		t.Fatal("expected error for empty username")
	}
}

func TestStaticVerifierCancelledContext(t *testing.T) {
	v, err := NewStaticVerifierWithCost("admin", "1234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.Verify(ctx, "admin", "1234"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStaticVerifierRejectsOverlongPassword(t *testing.T) {
	password := strings.Repeat("a", MaxPasswordLen)
	v, err := NewStaticVerifierWithCost("admin", password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := v.Verify(context.Background(), "admin", password+"EXTRA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("password sharing the first 72 bytes must not verify")
	}

	if ok, _ := v.Verify(context.Background(), "admin", password); !ok {
		t.Fatal("exact 72-byte password must verify")
	}
}

func TestNewStaticVerifierRejectsOverlongPassword(t *testing.T) {
	if _, err := NewStaticVerifierWithCost("admin", strings.Repeat("a", MaxPasswordLen+1), bcrypt.MinCost); err == nil {
		t.Fatal("expected error for a password over 72 bytes")
	}
}
