package catalog

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dmpt/absensi/services/catalog CatalogGW

// CatalogGW defines the backend calls used by the catalog usecase
type CatalogGW interface {
	ListProducts(ctx context.Context, params models.ListParams) (*models.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, in *models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, req *models.BrandRequest) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id string, req *models.BrandRequest) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
