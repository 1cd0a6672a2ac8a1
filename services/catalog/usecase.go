package catalog

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/models"
)

// CatalogUC represents the product catalog usecase interface
type CatalogUC interface {
	// products
	ListProducts(ctx context.Context, params models.ListParams) (*models.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, in *models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// brands
	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, req *models.BrandRequest) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id string, req *models.BrandRequest) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	// categories
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
