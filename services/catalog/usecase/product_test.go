package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"

	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/services/catalog/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*CatalogUC, *mocks.MockCatalogGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGW := mocks.NewMockCatalogGW(ctrl)
	return NewCatalogUC(mockGW), mockGW
}

func TestListProducts(t *testing.T) {
	uc, mockGW := newTestUC(t)

	expectedParams := models.ListParams{Page: 1, Search: "oli mesin"}
	mockGW.EXPECT().ListProducts(gomock.Any(), expectedParams).Return(&models.ProductPage{
		Data: []models.Product{{ID: "p-1", Name: "Oli Mesin"}},
		Meta: models.PageMeta{CurrentPage: 1, Total: 1},
	}, nil)

	page, err := uc.ListProducts(context.Background(), models.ListParams{Search: "  oli   mesin "})

	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
}

func TestGetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().GetProduct(gomock.Any(), "p-1").Return(&models.Product{ID: "p-1"}, nil)

		product, err := uc.GetProduct(context.Background(), "p-1")

		require.NoError(t, err)
		assert.Equal(t, "p-1", product.ID)
	})

	t.Run("not found", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().GetProduct(gomock.Any(), "missing").
			Return(nil, &httpclient.HTTPError{StatusCode: http.StatusNotFound, Message: "Produk tidak ditemukan"})

		product, err := uc.GetProduct(context.Background(), "missing")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.GetProduct(context.Background(), " ")

		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       *models.ProductInput
		expectedErr string
	}{
		{
			name:        "nil input",
			input:       nil,
			expectedErr: "product is required",
		},
		{
			name:        "missing name",
			input:       &models.ProductInput{CategoryID: "c-1", Name: "   "},
			expectedErr: "product name is required",
		},
		{
			name:        "missing category",
			input:       &models.ProductInput{Name: "Oli Mesin"},
			expectedErr: "product category is required",
		},
		{
			name: "unsupported image",
			input: &models.ProductInput{
				Name:       "Oli Mesin",
				CategoryID: "c-1",
				Image:      &models.FileUpload{Name: "brochure.pdf", Content: strings.NewReader("pdf")},
			},
			expectedErr: "unsupported image type",
		},
		{
			name: "image without content",
			input: &models.ProductInput{
				Name:       "Oli Mesin",
				CategoryID: "c-1",
				Image:      &models.FileUpload{Name: "photo.png"},
			},
			expectedErr: "has no content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUC(t)

			product, err := uc.CreateProduct(context.Background(), tt.input)

			assert.Nil(t, product)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestCreateProduct_Success(t *testing.T) {
	uc, mockGW := newTestUC(t)

	input := &models.ProductInput{
		Name:       "  Oli   Mesin ",
		CategoryID: "c-1",
		IsPublish:  true,
		Image:      &models.FileUpload{Name: "Oli.JPG", Content: strings.NewReader("jpeg")},
	}

	mockGW.EXPECT().CreateProduct(gomock.Any(), input).DoAndReturn(
		func(_ context.Context, in *models.ProductInput) (*models.Product, error) {
			assert.Equal(t, "Oli Mesin", in.Name)
			return &models.Product{ID: "p-1", Name: in.Name}, nil
		})

	product, err := uc.CreateProduct(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "p-1", product.ID)
}

func TestUpdateProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		input := &models.ProductInput{Name: "Oli Gardan", CategoryID: "c-1"}
		mockGW.EXPECT().UpdateProduct(gomock.Any(), "p-1", input).Return(&models.Product{ID: "p-1", Name: "Oli Gardan"}, nil)

		product, err := uc.UpdateProduct(context.Background(), "p-1", input)

		require.NoError(t, err)
		assert.Equal(t, "Oli Gardan", product.Name)
	})

	t.Run("not found", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().UpdateProduct(gomock.Any(), "p-9", gomock.Any()).
			Return(nil, &httpclient.HTTPError{StatusCode: http.StatusNotFound, Message: "not found"})

		_, err := uc.UpdateProduct(context.Background(), "p-9", &models.ProductInput{Name: "x", CategoryID: "c-1"})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		mockGW.EXPECT().DeleteProduct(gomock.Any(), "p-1").Return(nil)

		assert.NoError(t, uc.DeleteProduct(context.Background(), "p-1"))
	})

	t.Run("server error is not a not found", func(t *testing.T) {
		uc, mockGW := newTestUC(t)
		gwErr := &httpclient.HTTPError{StatusCode: http.StatusInternalServerError, Message: "An error occurred"}
		mockGW.EXPECT().DeleteProduct(gomock.Any(), "p-1").Return(gwErr)

		err := uc.DeleteProduct(context.Background(), "p-1")

		assert.ErrorIs(t, err, gwErr)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})
}
