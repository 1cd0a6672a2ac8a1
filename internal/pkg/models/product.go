package models

// Product is a catalog entry with its SKUs
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	BrandID     string    `json:"brand_id,omitempty"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	IsPublish   int       `json:"is_publish"`
	File        *string   `json:"file"`
	SkusCount   int       `json:"skus_count"`
	Category    *Category `json:"category,omitempty"`
	Skus        []SKU     `json:"skus,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	DeletedAt   *string   `json:"deleted_at"`
}

// SKU is a sellable variant of a product
type SKU struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Price       *float64 `json:"price"`
	Weight      *float64 `json:"weight"`
	Stock       *int     `json:"stock"`
	IsPublish   int      `json:"is_publish"`
	Packaging   string   `json:"packaging"`
	Description *string  `json:"description"`
	TotalOrder  int      `json:"total_order"`
}

// Category groups products
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// Brand is a product manufacturer
type Brand struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// ProductPage is a page of products
type ProductPage struct {
	Data []Product `json:"data"`
	Meta PageMeta  `json:"meta"`
}

// ProductInput is the multipart payload for creating or updating a product
type ProductInput struct {
	CategoryID  string
	BrandID     string
	Name        string
	Description string
	IsPublish   bool
	Image       *FileUpload
}

// BrandRequest creates or updates a brand
type BrandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryRequest creates or updates a category
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
