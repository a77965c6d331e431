package service

import (
	"context"
	"testing"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (ProductService, *MockProductRepository, *MockCategoryRepository) {
	t.Helper()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	return NewProductService(productRepo, categoryRepo, zerolog.Nop()), productRepo, categoryRepo
}

func TestProductService_GetAll_ClampsPagination(t *testing.T) {
	ctx := context.Background()
	svc, productRepo, _ := newProductService(t)

	productRepo.On("GetAll", ctx, defaultLimit, 0, "").Return([]model.Product{}, nil)
	productRepo.On("GetAll", ctx, maxLimit, 0, "sarees").Return([]model.Product{}, nil)

	_, err := svc.GetAll(ctx, 0, -5, "")
	require.NoError(t, err)

	_, err = svc.GetAll(ctx, 5000, 0, "sarees")
	require.NoError(t, err)

	productRepo.AssertExpectations(t)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, productRepo, _ := newProductService(t)

	productRepo.On("GetByID", ctx, "nope").Return(nil, nil)

	_, err := svc.GetByID(ctx, "nope")
	assert.Equal(t, model.ErrProductNotFound, err)
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, productRepo, _ := newProductService(t)
		productRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

		product, err := svc.Create(ctx, &model.ProductRequest{Name: "Saree", Price: 1500, Stock: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "Saree", product.Name)
	})

	t.Run("validation", func(t *testing.T) {
		svc, productRepo, _ := newProductService(t)

		tests := []struct {
			name string
			req  *model.ProductRequest
		}{
			{"nil request", nil},
			{"missing name", &model.ProductRequest{Price: 10}},
			{"negative price", &model.ProductRequest{Name: "X", Price: -1}},
			{"negative stock", &model.ProductRequest{Name: "X", Stock: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tt.req)
				var domainErr *model.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
			})
		}

		productRepo.AssertNotCalled(t, "Create")
	})
}

func TestProductService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, productRepo, _ := newProductService(t)

	productRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(false, nil)

	_, err := svc.Update(ctx, "nope", &model.ProductRequest{Name: "Saree", Price: 1})
	assert.Equal(t, model.ErrProductNotFound, err)
}

func TestProductService_DeleteCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, categoryRepo := newProductService(t)

	categoryRepo.On("Delete", ctx, "nope").Return(false, nil)

	assert.Equal(t, model.ErrCategoryNotFound, svc.DeleteCategory(ctx, "nope"))
}

func TestProductService_CreateCategory_RequiresName(t *testing.T) {
	ctx := context.Background()
	svc, _, categoryRepo := newProductService(t)

	_, err := svc.CreateCategory(ctx, &model.CategoryRequest{})

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	categoryRepo.AssertNotCalled(t, "Create")
}
