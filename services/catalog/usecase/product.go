package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ListProducts returns a page of products matching params
func (u *CatalogUC) ListProducts(ctx context.Context, params models.ListParams) (*models.ProductPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	params.Search = utils.SanitizeString(params.Search)
	return u.catalogGW.ListProducts(ctx, params)
}

// GetProduct returns a single product
func (u *CatalogUC) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	product, err := u.catalogGW.GetProduct(ctx, id)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}
	return product, nil
}

// CreateProduct validates and creates a product
func (u *CatalogUC) CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product, err := u.catalogGW.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}

	logger.Info("Product created",
		logger.String("product_id", product.ID),
		logger.String("name", product.Name),
		logger.Bool("has_image", in.Image != nil))
	return product, nil
}

// UpdateProduct validates and updates a product
func (u *CatalogUC) UpdateProduct(ctx context.Context, id string, in *models.ProductInput) (*models.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product, err := u.catalogGW.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}

	logger.Info("Product updated", logger.String("product_id", id))
	return product, nil
}

// DeleteProduct deletes a product
func (u *CatalogUC) DeleteProduct(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := u.catalogGW.DeleteProduct(ctx, id); err != nil {
		return httpclient.WrapNotFound(err)
	}

	logger.Info("Product deleted", logger.String("product_id", id))
	return nil
}

func validateProduct(in *models.ProductInput) error {
	if in == nil {
		return fmt.Errorf("%w: product is required", models.ErrInvalidInput)
	}
	in.Name = utils.SanitizeString(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: product name is required", models.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return fmt.Errorf("%w: product category is required", models.ErrInvalidInput)
	}
	if in.Image != nil {
		ext := strings.ToLower(filepath.Ext(in.Image.Name))
		if !imageExtensions[ext] {
			return fmt.Errorf("%w: unsupported image type %q", models.ErrInvalidInput, ext)
		}
		if in.Image.Content == nil {
			return fmt.Errorf("%w: image %s has no content", models.ErrInvalidInput, in.Image.Name)
		}
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", models.ErrInvalidInput)
	}
	return nil
}
