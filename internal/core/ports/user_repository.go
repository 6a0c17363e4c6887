package ports

import (
	"context"

	"github.com/localbiz/directory-api/internal/core/domain"
)

// UserRepository defines the interface for user identity persistence.
// Implementations must enforce email uniqueness at write time.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
