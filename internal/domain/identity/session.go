package identity

import (
	"strings"

	"github.com/shopfront/backend/internal/domain/shared"
)

// Session represents the currently signed-in (mock) user. A nil session
// means the storefront is browsed anonymously.
type Session struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// NewSession builds a session for the given email, deriving the display
// name from the local part of the address.
func NewSession(email string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	return &Session{Email: email, Name: name}, nil
}

// CredentialVerifier decides whether a login attempt is accepted. The
// storefront ships with a placeholder implementation; a real credential
// check would be provided by an external collaborator.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// MockVerifier is the demo credential policy: any non-empty email with a
// password of at least six characters is accepted. This is a placeholder,
// not a security contract - do not rely on it outside of demos.
type MockVerifier struct{}

// Verify implements CredentialVerifier
func (MockVerifier) Verify(email, password string) bool {
	return strings.TrimSpace(email) != "" && len(password) >= 6
}
