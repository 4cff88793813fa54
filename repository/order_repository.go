package repository

import (
	"context"
	"errors"

	"github.com/jibrilosman/self-order-kiosk/entity"

	"gorm.io/gorm"
)

// ErrDuplicateNumber is returned when another order already holds the number.
var ErrDuplicateNumber = errors.New("order number already taken")

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// POST /orders
func (r *OrderRepository) CreateOrder(ctx context.Context, o *entity.Order) error {
	err := r.DB.WithContext(ctx).Create(o).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateNumber
	}
	return err
}

// GetOrder returns gorm.ErrRecordNotFound for unknown ids.
func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders → neither delivered nor canceled
func (r *OrderRepository) ListActive(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("is_delivered = ? AND is_canceled = ?", false, false).
		Order("number ASC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).Order("number ASC").Find(&out).Error
	return out, err
}

// PUT /orders/:id → persist flag changes
func (r *OrderRepository) SaveOrder(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Save(o).Error
}

// MaxNumber is the highest number across all orders, 0 on an empty store.
func (r *OrderRepository) MaxNumber(ctx context.Context) (int, error) {
	return maxOrderNumber(r.DB.WithContext(ctx))
}

func maxOrderNumber(db *gorm.DB) (int, error) {
	var n int
	err := db.Model(&entity.Order{}).Select("COALESCE(MAX(number), 0)").Scan(&n).Error
	return n, err
}
