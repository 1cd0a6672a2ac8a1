package mockapi

import (
	"errors"
	"strings"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListProducts returns one page of products, optionally filtered by name
func (h *Handler) ListProducts(c echo.Context) error {
	page, perPage := pageParams(c)
	data, meta := paginate(h.store.Products(c.QueryParam(constants.QuerySearch)), page, perPage)
	return respondOK(c, "Products retrieved successfully", models.ProductPage{Data: data, Meta: meta})
}

// GetProduct returns a product with its SKUs
func (h *Handler) GetProduct(c echo.Context) error {
	product, found := h.store.Product(c.Param("id"))
	if !found {
		return notFound(c, "Produk")
	}
	return respondOK(c, "Product retrieved successfully", product)
}

// CreateProduct creates a product from a multipart form with an optional image
func (h *Handler) CreateProduct(c echo.Context) error {
	now := models.FormatTime(h.now())
	product := models.Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Skus:      []models.SKU{},
	}
	if err := h.applyProductForm(c, &product); err != nil {
		return respondError(c, err)
	}

	h.store.SaveProduct(product)
	logger.Info("Product created", logger.String("product_id", product.ID), logger.String("name", product.Name))
	return respondCreated(c, "Produk berhasil ditambahkan", product)
}

// UpdateProduct replaces the product fields, keeping the image when none is uploaded
func (h *Handler) UpdateProduct(c echo.Context) error {
	product, found := h.store.Product(c.Param("id"))
	if !found {
		return notFound(c, "Produk")
	}

	if err := h.applyProductForm(c, &product); err != nil {
		return respondError(c, err)
	}
	product.UpdatedAt = models.FormatTime(h.now())

	h.store.SaveProduct(product)
	return respondOK(c, "Produk berhasil diperbarui", product)
}

// DeleteProduct removes a product
func (h *Handler) DeleteProduct(c echo.Context) error {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		return notFound(c, "Produk")
	}
	return respondOK(c, "Produk berhasil dihapus", nil)
}

// applyProductForm validates the multipart form into p
func (h *Handler) applyProductForm(c echo.Context, p *models.Product) error {
	if err := c.Request().ParseMultipartForm(maxUploadBytes); err != nil {
		return errInvalidPayload
	}

	name := utils.SanitizeString(c.FormValue("name"))
	if name == "" {
		return unprocessable("Nama produk wajib diisi")
	}

	category, found := h.store.Category(c.FormValue("category_id"))
	if !found {
		return unprocessable("Kategori tidak ditemukan")
	}

	brandID := c.FormValue("brand_id")
	if brandID != "" {
		if _, found := h.store.Brand(brandID); !found {
			return unprocessable("Brand tidak ditemukan")
		}
	}

	file, err := h.saveUpload(c, "file", "products", imageExtensions)
	if err != nil {
		return err
	}

	p.Name = name
	p.Slug = utils.Slugify(name)
	p.CategoryID = category.ID
	p.Category = &category
	p.BrandID = brandID
	p.Description = optional(strings.TrimSpace(c.FormValue("description")))
	p.IsPublish = 0
	if c.FormValue("is_publish") == "1" {
		p.IsPublish = 1
	}
	if file != nil {
		p.File = file
	}
	p.SkusCount = len(p.Skus)
	return nil
}

// ListBrands returns every brand
func (h *Handler) ListBrands(c echo.Context) error {
	return respondOK(c, "Brands retrieved successfully", h.store.Brands())
}

// CreateBrand creates a brand
func (h *Handler) CreateBrand(c echo.Context) error {
	var req models.BrandRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	brand := models.Brand{ID: uuid.NewString()}
	if err := h.applyBrand(&brand, &req); err != nil {
		return respondError(c, err)
	}

	h.store.SaveBrand(brand)
	return respondCreated(c, "Brand berhasil ditambahkan", brand)
}

// UpdateBrand renames a brand
func (h *Handler) UpdateBrand(c echo.Context) error {
	brand, found := h.store.Brand(c.Param("id"))
	if !found {
		return notFound(c, "Brand")
	}

	var req models.BrandRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.applyBrand(&brand, &req); err != nil {
		return respondError(c, err)
	}

	h.store.SaveBrand(brand)
	return respondOK(c, "Brand berhasil diperbarui", brand)
}

// DeleteBrand removes a brand no product uses
func (h *Handler) DeleteBrand(c echo.Context) error {
	err := h.store.DeleteBrand(c.Param("id"))
	switch {
	case errors.Is(err, errInUse):
		return utils.UnprocessableResponse(c, "Brand masih digunakan oleh produk")
	case err != nil:
		return notFound(c, "Brand")
	}
	return respondOK(c, "Brand berhasil dihapus", nil)
}

func (h *Handler) applyBrand(b *models.Brand, req *models.BrandRequest) error {
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return unprocessable("Nama brand wajib diisi")
	}
	slug := utils.Slugify(name)
	for _, other := range h.store.Brands() {
		if other.Slug == slug && other.ID != b.ID {
			return unprocessable("Brand sudah ada")
		}
	}

	b.Name = name
	b.Slug = slug
	b.Description = optional(strings.TrimSpace(req.Description))
	return nil
}

// ListCategories returns every category
func (h *Handler) ListCategories(c echo.Context) error {
	return respondOK(c, "Categories retrieved successfully", h.store.Categories())
}

// CreateCategory creates a category
func (h *Handler) CreateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}

	now := models.FormatTime(h.now())
	category := models.Category{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	if err := h.applyCategory(&category, &req); err != nil {
		return respondError(c, err)
	}

	h.store.SaveCategory(category)
	return respondCreated(c, "Kategori berhasil ditambahkan", category)
}

// UpdateCategory renames a category
func (h *Handler) UpdateCategory(c echo.Context) error {
	category, found := h.store.Category(c.Param("id"))
	if !found {
		return notFound(c, "Kategori")
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.applyCategory(&category, &req); err != nil {
		return respondError(c, err)
	}
	category.UpdatedAt = models.FormatTime(h.now())

	h.store.SaveCategory(category)
	return respondOK(c, "Kategori berhasil diperbarui", category)
}

// DeleteCategory removes a category no product uses
func (h *Handler) DeleteCategory(c echo.Context) error {
	err := h.store.DeleteCategory(c.Param("id"))
	switch {
	case errors.Is(err, errInUse):
		return utils.UnprocessableResponse(c, "Kategori masih digunakan oleh produk")
	case err != nil:
		return notFound(c, "Kategori")
	}
	return respondOK(c, "Kategori berhasil dihapus", nil)
}

func (h *Handler) applyCategory(cat *models.Category, req *models.CategoryRequest) error {
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return unprocessable("Nama kategori wajib diisi")
	}
	slug := utils.Slugify(name)
	for _, other := range h.store.Categories() {
		if other.Slug == slug && other.ID != cat.ID {
			return unprocessable("Kategori sudah ada")
		}
	}

	cat.Name = name
	cat.Slug = slug
	cat.Description = optional(strings.TrimSpace(req.Description))
	return nil
}
