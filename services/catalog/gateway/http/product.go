package gateway_http

import (
	"context"
	"fmt"

	"github.com/dmpt/absensi/internal/pkg/constants"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
)

// ListProducts fetches one page of products
func (g *HTTPGateway) ListProducts(ctx context.Context, params models.ListParams) (*models.ProductPage, error) {
	var page models.ProductPage
	if _, err := g.client.Get(ctx, constants.PathProducts, &page, httpclient.WithListParams(params)); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &page, nil
}

// GetProduct fetches a product with its SKUs
func (g *HTTPGateway) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if _, err := g.client.Get(ctx, fmt.Sprintf(constants.PathProduct, id), &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// CreateProduct uploads a new product with its optional image
func (g *HTTPGateway) CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	var product models.Product
	if _, err := g.client.PostForm(ctx, constants.PathProducts, productForm(in), &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces a product, uploading a new image when one is given
func (g *HTTPGateway) UpdateProduct(ctx context.Context, id string, in *models.ProductInput) (*models.Product, error) {
	var product models.Product
	if _, err := g.client.PutForm(ctx, fmt.Sprintf(constants.PathProduct, id), productForm(in), &product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &product, nil
}

// DeleteProduct removes a product
func (g *HTTPGateway) DeleteProduct(ctx context.Context, id string) error {
	if _, err := g.client.Delete(ctx, fmt.Sprintf(constants.PathProduct, id), nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func productForm(in *models.ProductInput) *httpclient.Form {
	form := httpclient.NewForm().
		Set("name", in.Name).
		Set("category_id", in.CategoryID)

	if in.BrandID != "" {
		form.Set("brand_id", in.BrandID)
	}
	if in.Description != "" {
		form.Set("description", in.Description)
	}
	if in.IsPublish {
		form.Set("is_publish", "1")
	} else {
		form.Set("is_publish", "0")
	}
	if in.Image != nil {
		form.AddFile("file", in.Image.Name, in.Image.Content)
	}
	return form
}
