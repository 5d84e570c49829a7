package repository

import (
	"context"
	"time"

	"shopdash/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	ShopID    string    `gorm:"column:shop_id;index"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) domain.Category {
	return domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		ShopID:    m.ShopID,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()

	m := categoryModel{
		ID:        c.ID,
		Name:      c.Name,
		ShopID:    c.ShopID,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *CategoryRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Category, error) {
	var rows []categoryModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, m := range rows {
		categories = append(categories, toDomainCategory(m))
	}
	return categories, nil
}
