package repository

import (
	"context"

	"github.com/jibrilosman/self-order-kiosk/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// FindByCategory lists every product when category is empty.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var products []entity.Product
	q := r.DB.WithContext(ctx).Order("created_at ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// CreateMany inserts in one batch; names are not deduplicated.
func (r *ProductRepository) CreateMany(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&products).Error
}
