package mockapi

import (
	"errors"
	"testing"
	"time"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, Seed(store, models.MockAPIConfig{SeedUsername: "admin", SeedPassword: "password"}))
	return store
}

func TestSeed(t *testing.T) {
	store := seededStore(t)

	assert.Len(t, store.Categories(), 2)
	assert.Len(t, store.Brands(), 2)
	assert.Len(t, store.Products(""), 3)
	assert.Len(t, store.Orders("", ""), 2)

	order, found := store.Order(1001)
	require.True(t, found)
	assert.Equal(t, 766000.0, order.TotalPrice)
	assert.Equal(t, order.TotalPrice, order.Remaining)
	assert.Equal(t, 22, order.Quantity)
}

func TestStore_Authenticate(t *testing.T) {
	store := seededStore(t)

	tests := []struct {
		name     string
		username string
		password string
		expectOK bool
	}{
		{name: "valid credentials", username: "admin", password: "password", expectOK: true},
		{name: "username is case insensitive", username: "ADMIN", password: "password", expectOK: true},
		{name: "wrong password", username: "admin", password: "secret"},
		{name: "unknown user", username: "nobody", password: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := store.Authenticate(tt.username, tt.password)
			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, SeedUserID, user.ID)
			}
		})
	}

	assert.Error(t, store.AddUser(models.User{ID: 9, Username: "admin"}, "x"))
}

func TestStore_Revoke(t *testing.T) {
	store := NewStore()

	store.Revoke("expired", time.Now().Add(-time.Minute))
	assert.True(t, store.IsRevoked("expired"))

	store.Revoke("current", time.Now().Add(time.Hour))
	assert.True(t, store.IsRevoked("current"))
	assert.False(t, store.IsRevoked("expired"), "entries past their expiry are dropped")
	assert.False(t, store.IsRevoked("other"))
}

func TestStore_HasAttendance(t *testing.T) {
	store := NewStore()
	day := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	store.AddAttendance(models.Attendance{ID: "a-1", UserID: 1, Type: models.AttendanceCheckIn, CreatedAt: day})

	assert.True(t, store.HasAttendance(1, models.AttendanceCheckIn, day.Add(9*time.Hour)))
	assert.False(t, store.HasAttendance(1, models.AttendanceCheckOut, day))
	assert.False(t, store.HasAttendance(2, models.AttendanceCheckIn, day))
	assert.False(t, store.HasAttendance(1, models.AttendanceCheckIn, day.AddDate(0, 0, 1)))
}

func TestStore_DeleteTaxonomyInUse(t *testing.T) {
	store := seededStore(t)
	product := store.Products("Helix")[0]

	assert.ErrorIs(t, store.DeleteCategory(product.CategoryID), errInUse)
	assert.ErrorIs(t, store.DeleteBrand(product.BrandID), errInUse)
	assert.ErrorIs(t, store.DeleteBrand("missing"), errNotFound)

	require.NoError(t, store.DeleteProduct(product.ID))
	assert.NoError(t, store.DeleteBrand(product.BrandID))
	assert.ErrorIs(t, store.DeleteProduct(product.ID), errNotFound)
}

func TestStore_UpdateOrder(t *testing.T) {
	store := seededStore(t)

	_, err := store.UpdateOrder(1001, func(o *models.Order) error {
		o.Status = constants.OrderStatusCancelled
		o.Payments = append(o.Payments, models.Payment{ID: "p-1"})
		return errors.New("rejected")
	})
	require.Error(t, err)

	order, _ := store.Order(1001)
	assert.Equal(t, constants.OrderStatusPending, order.Status)
	assert.Empty(t, order.Payments)

	updated, err := store.UpdateOrder(1001, func(o *models.Order) error {
		o.Status = constants.OrderStatusProcessing
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, constants.OrderStatusProcessing, updated.Status)

	_, err = store.UpdateOrder(42, func(o *models.Order) error { return nil })
	assert.ErrorIs(t, err, errNotFound)
}

func TestStore_OrdersFilter(t *testing.T) {
	store := seededStore(t)

	assert.Len(t, store.Orders(constants.OrderStatusPending, ""), 1)
	assert.Len(t, store.Orders("", "sinar"), 1)
	assert.Empty(t, store.Orders(constants.OrderStatusPending, "sinar"))

	orders := store.Orders("", "")
	assert.Equal(t, int64(1002), orders[0].ID, "newest first")
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name          string
		page          int
		perPage       int
		expectedItems []int
		expectedMeta  models.PageMeta
	}{
		{
			name:          "first page",
			page:          1,
			perPage:       2,
			expectedItems: []int{1, 2},
			expectedMeta:  models.PageMeta{CurrentPage: 1, Total: 5, PerPage: 2, LastPage: 3, From: 1},
		},
		{
			name:          "last partial page",
			page:          3,
			perPage:       2,
			expectedItems: []int{5},
			expectedMeta:  models.PageMeta{CurrentPage: 3, Total: 5, PerPage: 2, LastPage: 3, From: 5},
		},
		{
			name:          "past the end",
			page:          4,
			perPage:       2,
			expectedItems: []int{},
			expectedMeta:  models.PageMeta{CurrentPage: 4, Total: 5, PerPage: 2, LastPage: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := paginate(items, tt.page, tt.perPage)
			assert.Equal(t, tt.expectedItems, got)
			assert.Equal(t, tt.expectedMeta, meta)
		})
	}

	_, meta := paginate([]int{}, 1, 10)
	assert.Equal(t, 1, meta.LastPage)
}
