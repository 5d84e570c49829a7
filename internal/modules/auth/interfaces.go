package auth

import (
	"context"

	"shopdash/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ShopReader resolves the shops a user manages so responses can carry
// populated managedShops.
type ShopReader interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error)
}
