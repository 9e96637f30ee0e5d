// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to register a new account.
// Role is optional and defaults to "Vendedor".
type RegisterInput struct {
	Username string
	Password string
	Role     string
}

// --- Output DTOs ---

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token     string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and mints a session token. Unknown accounts
	// and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates a new account. Exactly one insert happens, and only
	// on full success; a duplicate username leaves the store unchanged.
	Register(ctx context.Context, input *RegisterInput) error
}
