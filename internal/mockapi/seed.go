package mockapi

import (
	"fmt"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/google/uuid"
)

// SeedUserID is the id of the seeded administrator
const SeedUserID int64 = 1

// Seed fills the store with the administrator account and a small catalog with orders
func Seed(store *Store, cfg models.MockAPIConfig) error {
	admin := models.User{
		ID:       SeedUserID,
		Name:     "Administrator",
		Username: cfg.SeedUsername,
		Email:    cfg.SeedUsername + "@dmpt.local",
		Role:     &models.Role{Name: "admin", DisplayName: "Administrator"},
	}
	if err := store.AddUser(admin, cfg.SeedPassword); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	now := models.FormatTime(models.Now())

	lubricants := newCategory("Pelumas", "Oli mesin dan gardan", now)
	batteries := newCategory("Aki", "", now)
	store.SaveCategory(lubricants)
	store.SaveCategory(batteries)

	pertamina := newBrand("Pertamina")
	shell := newBrand("Shell")
	store.SaveBrand(pertamina)
	store.SaveBrand(shell)

	engineOil := newProduct("Oli Mesin Enduro 4T", lubricants, pertamina.ID, now,
		seedSKU{"1 Liter", "EN4T-1L", 55000, 48},
		seedSKU{"0.8 Liter", "EN4T-08L", 47000, 30},
	)
	gearOil := newProduct("Oli Gardan Helix", lubricants, shell.ID, now,
		seedSKU{"120 ml", "HLX-120", 18000, 120},
	)
	battery := newProduct("Aki Kering GTZ5S", batteries, "", now,
		seedSKU{"Unit", "GTZ5S", 235000, 12},
	)
	store.SaveProduct(engineOil)
	store.SaveProduct(gearOil)
	store.SaveProduct(battery)

	sales := models.User{ID: 2, Name: "Budi Santoso", Username: "budi"}
	store.AddOrder(newOrder(1001, sales, models.Customer{
		ID:        uuid.NewString(),
		Name:      "Asep",
		Phone:     "081200000001",
		Address:   "Jl. Guntur No. 5",
		StoreName: "Toko Maju Motor",
		City:      "Garut",
		State:     "Jawa Barat",
	}, constants.OrderStatusPending, now,
		models.OrderItem{ID: uuid.NewString(), Brand: pertamina.Name, Name: engineOil.Name, Quantity: 10, Price: 55000},
		models.OrderItem{ID: uuid.NewString(), Brand: shell.Name, Name: gearOil.Name, Quantity: 12, Price: 18000},
	))
	store.AddOrder(newOrder(1002, sales, models.Customer{
		ID:        uuid.NewString(),
		Name:      "Dedi",
		Phone:     "081200000002",
		Address:   "Jl. Ciledug No. 21",
		StoreName: "Bengkel Sinar Jaya",
		City:      "Garut",
		State:     "Jawa Barat",
	}, constants.OrderStatusProcessing, now,
		models.OrderItem{ID: uuid.NewString(), Name: battery.Name, Quantity: 2, Price: 235000},
	))

	return nil
}

type seedSKU struct {
	name  string
	code  string
	price float64
	stock int
}

func newCategory(name, description, now string) models.Category {
	return models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: optional(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newBrand(name string) models.Brand {
	return models.Brand{ID: uuid.NewString(), Name: name, Slug: utils.Slugify(name)}
}

func newProduct(name string, category models.Category, brandID, now string, skus ...seedSKU) models.Product {
	p := models.Product{
		ID:         uuid.NewString(),
		CategoryID: category.ID,
		BrandID:    brandID,
		Name:       name,
		Slug:       utils.Slugify(name),
		IsPublish:  1,
		Category:   &category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, s := range skus {
		price, stock := s.price, s.stock
		p.Skus = append(p.Skus, models.SKU{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Name:      s.name,
			Code:      s.code,
			Price:     &price,
			Stock:     &stock,
			IsPublish: 1,
			Packaging: "pcs",
		})
	}
	p.SkusCount = len(p.Skus)
	return p
}

func newOrder(id int64, sales models.User, customer models.Customer, status, now string, items ...models.OrderItem) models.Order {
	o := models.Order{
		ID:        id,
		Sales:     &sales,
		Customer:  &customer,
		Status:    status,
		Payments:  []models.Payment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, item := range items {
		item.Total = item.Price * float64(item.Quantity)
		o.Items = append(o.Items, item)
		o.Quantity += item.Quantity
		o.TotalPrice += item.Total
	}
	o.Remaining = o.TotalPrice
	return o
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
