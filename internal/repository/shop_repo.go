package repository

import (
	"context"
	"time"

	"shopdash/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

type shopModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	OwnerID   string    `gorm:"column:owner_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (shopModel) TableName() string { return "shops" }

func toDomainShop(m shopModel) domain.Shop {
	return domain.Shop{
		ID:        m.ID,
		Name:      m.Name,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()

	m := shopModel{
		ID:        s.ID,
		Name:      s.Name,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ShopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	var m shopModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	s := toDomainShop(m)
	return &s, nil
}

func (r *ShopRepository) ListAll(ctx context.Context) ([]domain.Shop, error) {
	var rows []shopModel
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	shops := make([]domain.Shop, 0, len(rows))
	for _, m := range rows {
		shops = append(shops, toDomainShop(m))
	}
	return shops, nil
}

func (r *ShopRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error) {
	var rows []shopModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	shops := make([]domain.Shop, 0, len(rows))
	for _, m := range rows {
		shops = append(shops, toDomainShop(m))
	}
	return shops, nil
}
