package gateway_http

import (
	"context"
	"fmt"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/models"
)

// ListBrands fetches every brand
func (g *HTTPGateway) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if _, err := g.client.Get(ctx, constants.PathBrands, &brands); err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// CreateBrand creates a brand
func (g *HTTPGateway) CreateBrand(ctx context.Context, req *models.BrandRequest) (*models.Brand, error) {
	var brand models.Brand
	if _, err := g.client.Post(ctx, constants.PathBrands, req, &brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, nil
}

// UpdateBrand updates a brand
func (g *HTTPGateway) UpdateBrand(ctx context.Context, id string, req *models.BrandRequest) (*models.Brand, error) {
	var brand models.Brand
	if _, err := g.client.Put(ctx, fmt.Sprintf(constants.PathBrand, id), req, &brand); err != nil {
		return nil, fmt.Errorf("failed to update brand %s: %w", id, err)
	}
	return &brand, nil
}

// DeleteBrand removes a brand
func (g *HTTPGateway) DeleteBrand(ctx context.Context, id string) error {
	if _, err := g.client.Delete(ctx, fmt.Sprintf(constants.PathBrand, id), nil); err != nil {
		return fmt.Errorf("failed to delete brand %s: %w", id, err)
	}
	return nil
}

// ListCategories fetches every category
func (g *HTTPGateway) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if _, err := g.client.Get(ctx, constants.PathCategories, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category
func (g *HTTPGateway) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if _, err := g.client.Post(ctx, constants.PathCategories, req, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory updates a category
func (g *HTTPGateway) UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if _, err := g.client.Put(ctx, fmt.Sprintf(constants.PathCategory, id), req, &category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return &category, nil
}

// DeleteCategory removes a category
func (g *HTTPGateway) DeleteCategory(ctx context.Context, id string) error {
	if _, err := g.client.Delete(ctx, fmt.Sprintf(constants.PathCategory, id), nil); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}
