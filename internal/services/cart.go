package service

import (
	"context"
	"time"

	"github.com/xomerch/storefront/internal/cart"
	"github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/kvstore"
	"github.com/xomerch/storefront/internal/models"
	repository "github.com/xomerch/storefront/internal/repositories"
)

// CartService materializes a session's cart store from the key-value store,
// applies one mutation, and returns the fresh view. The store persists on
// every mutation, so the service itself stays stateless across requests.
type CartService struct {
	kv        kvstore.Store
	products  repository.ProductRepository
	noticeTTL time.Duration
}

func NewCartService(kv kvstore.Store, products repository.ProductRepository, noticeTTL time.Duration) *CartService {
	return &CartService{kv: kv, products: products, noticeTTL: noticeTTL}
}

func (s *CartService) load(ctx context.Context, sessionID string) *cart.Store {
	key := kvstore.Key(kvstore.CartKeyPrefix, sessionID)

	return cart.NewStore(ctx, s.kv, key, cart.WithNoticeTTL(s.noticeTTL))
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) *models.CartView {
	return s.load(ctx, sessionID).View()
}

// AddItem resolves the product from the catalog so the denormalized line
// item fields are captured server-side at add time.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartView, error) {

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	store := s.load(ctx, sessionID)
	store.AddItem(ctx, product)

	return store.View(), nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) *models.CartView {

	store := s.load(ctx, sessionID)
	store.RemoveItem(ctx, productID)

	return store.View()
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) *models.CartView {

	store := s.load(ctx, sessionID)
	store.SetQuantity(ctx, productID, quantity)

	return store.View()
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) *models.CartView {

	store := s.load(ctx, sessionID)
	store.Clear(ctx)

	return store.View()
}
