package services

import (
	"context"
	"fmt"

	"github.com/jibrilosman/self-order-kiosk/configs"
	"github.com/jibrilosman/self-order-kiosk/entity"
	"github.com/jibrilosman/self-order-kiosk/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) List(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.Repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

type CreateProductReq struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductReq) (*entity.Product, error) {
	p := &entity.Product{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Seed inserts the fixed catalog. Calling it twice inserts it twice.
func (s *ProductService) Seed(ctx context.Context) ([]entity.Product, error) {
	products := configs.SeedProducts()
	if err := s.Repo.CreateMany(ctx, products); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Categories() []entity.Category {
	return configs.SeedCategories()
}
