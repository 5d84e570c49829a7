package onboarding

import (
	"context"
	"errors"
	"testing"

	"shopdash/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) ListCategories(ctx context.Context, shopID string) ([]domain.Category, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func ownerWithShop() *domain.User {
	return &domain.User{
		ID:           "u-1",
		Role:         domain.RoleShopAdmin,
		ManagedShops: []domain.ShopRef{domain.ShopID("s-1")},
	}
}

func TestLoader_NoShop(t *testing.T) {
	lister := new(mockLister)
	loader := NewLoader(lister)

	status := loader.Load(context.Background(), &domain.User{ID: "u-1", Role: domain.RoleShopAdmin}, false)
	assert.False(t, status.HasShop)
	assert.False(t, status.HasCategory)
	lister.AssertNotCalled(t, "ListCategories", mock.Anything, mock.Anything)
}

func TestLoader_CategoryScopedToFirstShopAndCreator(t *testing.T) {
	lister := new(mockLister)
	lister.On("ListCategories", mock.Anything, "s-1").Return([]domain.Category{
		{ID: "c-1", ShopID: "s-1", CreatedBy: "somebody-else"},
	}, nil)

	loader := NewLoader(lister)
	status := loader.Load(context.Background(), ownerWithShop(), false)

	assert.True(t, status.HasShop)
	assert.False(t, status.HasCategory, "a category created by someone else does not count")
}

func TestLoader_HasCategory(t *testing.T) {
	lister := new(mockLister)
	lister.On("ListCategories", mock.Anything, "s-1").Return([]domain.Category{
		{ID: "c-1", ShopID: "s-1", CreatedBy: "somebody-else"},
		{ID: "c-2", ShopID: "s-1", CreatedBy: "u-1"},
	}, nil)

	status := NewLoader(lister).Load(context.Background(), ownerWithShop(), false)
	assert.True(t, status.HasCategory)
}

func TestLoader_LookupFailureFailsClosed(t *testing.T) {
	lister := new(mockLister)
	lister.On("ListCategories", mock.Anything, "s-1").Return(nil, errors.New("network down"))

	status := NewLoader(lister).Load(context.Background(), ownerWithShop(), false)
	assert.True(t, status.HasShop)
	assert.False(t, status.HasCategory, "lookup failure must read as no category")
}

func TestLoader_SessionFlagPassesThrough(t *testing.T) {
	status := NewLoader(new(mockLister)).Load(context.Background(), nil, true)
	assert.True(t, status.CategoryCreatedThisSession)
	assert.False(t, status.HasShop)
}
