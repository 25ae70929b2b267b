package service

import (
	"context"

	"github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/models"
	repository "github.com/xomerch/storefront/internal/repositories"
)

type ProductService interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SeedCatalog(ctx context.Context) (int, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// ListProducts implements ProductService.
func (s *productService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, category)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if products == nil {
		products = []models.Product{}
	}

	return products, nil
}

// GetProduct implements ProductService.
func (s *productService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

// SeedCatalog implements ProductService.
func (s *productService) SeedCatalog(ctx context.Context) (int, error) {
	count, err := s.repo.ReplaceAll(ctx, seedProducts())
	if err != nil {
		return 0, errors.DatabaseError("Failed to seed catalog").WithError(err)
	}

	return count, nil
}
