package catalog

import (
	"context"
	"errors"

	"shopdash/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	shops      ShopRepositoryInterface
	categories CategoryRepositoryInterface
}

func NewService(shops ShopRepositoryInterface, categories CategoryRepositoryInterface) *Service {
	return &Service{shops: shops, categories: categories}
}

// CreateShop registers a shop for the calling user. Only shop-owning roles
// may register one; this is the step that completes the first half of
// onboarding.
func (s *Service) CreateShop(ctx context.Context, userID string, role domain.Role, req CreateShopRequest) (*domain.Shop, error) {
	if role != domain.RoleShopAdmin && role != domain.RoleCustomer {
		return nil, ErrForbidden
	}

	shop := &domain.Shop{
		Name:    req.Name,
		OwnerID: userID,
	}
	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *Service) MyShops(ctx context.Context, userID string) ([]domain.Shop, error) {
	return s.shops.ListByOwner(ctx, userID)
}

// AllShops backs the super admin screens. The role check happens in the
// middleware, not here.
func (s *Service) AllShops(ctx context.Context) ([]domain.Shop, error) {
	return s.shops.ListAll(ctx)
}

// CreateCategory adds a category to a shop the calling user owns.
func (s *Service) CreateCategory(ctx context.Context, userID string, req CreateCategoryRequest) (*domain.Category, error) {
	shop, err := s.shops.GetByID(ctx, req.Shop)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if shop.OwnerID != userID {
		return nil, ErrForbidden
	}

	category := &domain.Category{
		Name:      req.Name,
		ShopID:    shop.ID,
		CreatedBy: userID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, shopID string) ([]domain.Category, error) {
	return s.categories.ListByShop(ctx, shopID)
}
