// Package onboarding computes how far a shop-owning user has gotten:
// a registered shop, then a first category. The status is recomputed on
// demand per navigation and never cached here.
package onboarding

import (
	"context"

	"shopdash/internal/domain"
)

type Status struct {
	HasShop                    bool
	HasCategory                bool
	CategoryCreatedThisSession bool
}

// CategoryLister — the single backend lookup the loader needs.
type CategoryLister interface {
	ListCategories(ctx context.Context, shopID string) ([]domain.Category, error)
}

type Loader struct {
	categories CategoryLister
}

func NewLoader(categories CategoryLister) *Loader {
	return &Loader{categories: categories}
}

// Load derives the current status for a user. The category lookup is scoped
// to the first managed shop and fails closed: a failed call reads as "no
// category yet", keeping gated tabs locked rather than surfacing an error.
func (l *Loader) Load(ctx context.Context, user *domain.User, categoryCreated bool) Status {
	status := Status{CategoryCreatedThisSession: categoryCreated}
	if user == nil {
		return status
	}

	shopID, ok := user.FirstShopID()
	if !ok {
		return status
	}
	status.HasShop = true

	categories, err := l.categories.ListCategories(ctx, shopID)
	if err != nil {
		return status
	}
	for _, c := range categories {
		if c.CreatedBy == user.ID {
			status.HasCategory = true
			break
		}
	}
	return status
}
