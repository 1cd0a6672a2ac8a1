package usecase

import (
	"context"
	"net/http"
	"testing"

	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrands(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().ListBrands(gomock.Any()).Return([]models.Brand{{ID: "b-1", Name: "Pertamina"}}, nil)

		brands, err := uc.ListBrands(context.Background())

		require.NoError(t, err)
		assert.Len(t, brands, 1)
	})

	t.Run("create trims name", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().CreateBrand(gomock.Any(), &models.BrandRequest{Name: "Shell Helix"}).
			Return(&models.Brand{ID: "b-2", Name: "Shell Helix"}, nil)

		brand, err := uc.CreateBrand(context.Background(), &models.BrandRequest{Name: " Shell  Helix "})

		require.NoError(t, err)
		assert.Equal(t, "b-2", brand.ID)
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.CreateBrand(context.Background(), &models.BrandRequest{Name: ""})
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		_, err = uc.CreateBrand(context.Background(), nil)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("update not found", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().UpdateBrand(gomock.Any(), "b-9", gomock.Any()).
			Return(nil, &httpclient.HTTPError{StatusCode: http.StatusNotFound, Message: "not found"})

		_, err := uc.UpdateBrand(context.Background(), "b-9", &models.BrandRequest{Name: "Top 1"})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().DeleteBrand(gomock.Any(), "b-1").Return(nil)

		assert.NoError(t, uc.DeleteBrand(context.Background(), "b-1"))
	})
}

func TestCategories(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{{ID: "c-1", Name: "Pelumas"}}, nil)

		categories, err := uc.ListCategories(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Pelumas", categories[0].Name)
	})

	t.Run("create", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(&models.Category{ID: "c-2", Name: "Aki"}, nil)

		category, err := uc.CreateCategory(context.Background(), &models.CategoryRequest{Name: "Aki"})

		require.NoError(t, err)
		assert.Equal(t, "c-2", category.ID)
	})

	t.Run("update requires id", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.UpdateCategory(context.Background(), "", &models.CategoryRequest{Name: "Aki"})

		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("delete not found", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().DeleteCategory(gomock.Any(), "c-9").
			Return(&httpclient.HTTPError{StatusCode: http.StatusNotFound, Message: "not found"})

		err := uc.DeleteCategory(context.Background(), "c-9")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
