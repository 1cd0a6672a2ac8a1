package usecase

import (
	"context"
	"fmt"

	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
)

// ListBrands returns every brand
func (u *CatalogUC) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return u.catalogGW.ListBrands(ctx)
}

// CreateBrand creates a brand
func (u *CatalogUC) CreateBrand(ctx context.Context, req *models.BrandRequest) (*models.Brand, error) {
	if err := validateBrand(req); err != nil {
		return nil, err
	}
	return u.catalogGW.CreateBrand(ctx, req)
}

// UpdateBrand updates a brand
func (u *CatalogUC) UpdateBrand(ctx context.Context, id string, req *models.BrandRequest) (*models.Brand, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateBrand(req); err != nil {
		return nil, err
	}
	brand, err := u.catalogGW.UpdateBrand(ctx, id, req)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}
	return brand, nil
}

// DeleteBrand deletes a brand
func (u *CatalogUC) DeleteBrand(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return httpclient.WrapNotFound(u.catalogGW.DeleteBrand(ctx, id))
}

// ListCategories returns every category
func (u *CatalogUC) ListCategories(ctx context.Context) ([]models.Category, error) {
	return u.catalogGW.ListCategories(ctx)
}

// CreateCategory creates a category
func (u *CatalogUC) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	if err := validateCategory(req); err != nil {
		return nil, err
	}
	return u.catalogGW.CreateCategory(ctx, req)
}

// UpdateCategory updates a category
func (u *CatalogUC) UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateCategory(req); err != nil {
		return nil, err
	}
	category, err := u.catalogGW.UpdateCategory(ctx, id, req)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}
	return category, nil
}

// DeleteCategory deletes a category
func (u *CatalogUC) DeleteCategory(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return httpclient.WrapNotFound(u.catalogGW.DeleteCategory(ctx, id))
}

func validateBrand(req *models.BrandRequest) error {
	if req == nil {
		return fmt.Errorf("%w: brand is required", models.ErrInvalidInput)
	}
	req.Name = utils.SanitizeString(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: brand name is required", models.ErrInvalidInput)
	}
	return nil
}

func validateCategory(req *models.CategoryRequest) error {
	if req == nil {
		return fmt.Errorf("%w: category is required", models.ErrInvalidInput)
	}
	req.Name = utils.SanitizeString(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: category name is required", models.ErrInvalidInput)
	}
	return nil
}
