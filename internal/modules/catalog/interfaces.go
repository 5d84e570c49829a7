package catalog

import (
	"context"

	"shopdash/internal/domain"
)

type ShopRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Shop) error
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error)
	ListAll(ctx context.Context) ([]domain.Shop, error)
}

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Category) error
	ListByShop(ctx context.Context, shopID string) ([]domain.Category, error)
}
