package ports

import (
	"context"

	"github.com/localbiz/directory-api/internal/core/domain"
)

// AuthResult is returned after registration or login. Registration issues a
// token immediately so clients can act without a second round trip.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
