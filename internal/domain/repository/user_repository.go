package repository

import (
	"context"

	"pharma-info-service/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns (nil, nil) when no user carries the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID returns (nil, nil) when the id resolves to nothing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ExistsByEmailOrPharmacistID(ctx context.Context, email, pharmacistID string) (bool, error)
}
