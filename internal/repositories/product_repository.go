package repository

import (
	"context"
	"fmt"

	"github.com/xomerch/storefront/internal/models"
	"github.com/xomerch/storefront/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ReplaceAll(ctx context.Context, products []models.Product) (int, error)
}

type productRepository struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) ProductRepository {
	return &productRepository{coll: db.Collection("products")}
}

// ListProducts returns products for a category, or the whole catalog when
// category is empty or the "all" sentinel.
func (r *productRepository) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if category != "" && category != models.CategoryAll {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(dbCtx, filter)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer cursor.Close(dbCtx)

	var products []models.Product
	if err := cursor.All(dbCtx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var product models.Product

	err := r.coll.FindOne(dbCtx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, fmt.Errorf("querying product %s: %w", id, err)
	}

	return &product, nil
}

// ReplaceAll drops the current catalog and inserts the given products. Used
// by seeding; idempotent by construction.
func (r *productRepository) ReplaceAll(ctx context.Context, products []models.Product) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.coll.DeleteMany(dbCtx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clearing products: %w", err)
	}

	docs := make([]any, 0, len(products))
	for i := range products {
		docs = append(docs, products[i])
	}

	result, err := r.coll.InsertMany(dbCtx, docs)
	if err != nil {
		return 0, fmt.Errorf("inserting products: %w", err)
	}

	return len(result.InsertedIDs), nil
}
