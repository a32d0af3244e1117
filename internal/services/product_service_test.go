package services_test

import (
	"testing"

	"homestore/internal/models"
	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductFilter) ([]models.Product, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategoryID(categoryID string) ([]models.Product, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(categoryID string) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

const testCategoryID = "33333333-3333-3333-3333-333333333333"

func TestProductService_CreateDerivesSlug(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.Create(services.ProductInput{
		Name:       "Đồ Dùng Nhà Bếp",
		Price:      199.99,
		Stock:      10,
		CategoryID: testCategoryID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "do-dung-nha-bep", product.Slug)
	assert.Equal(t, testCategoryID, product.CategoryID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateReslugsOnlyOnRename(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{
		ID:         "p1",
		Name:       "Ceramic Vase",
		Slug:       "ceramic-vase",
		Price:      50,
		CategoryID: testCategoryID,
	}

	// A price-only update leaves the slug alone.
	mockRepo.On("GetByID", "p1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	price := 60.0
	product, err := service.Update("p1", services.ProductUpdateInput{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, "ceramic-vase", product.Slug)
	assert.Equal(t, 60.0, product.Price)

	// Renaming re-derives the slug.
	mockRepo.On("GetByID", "p1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	name := "Porcelain Vase"
	product, err = service.Update("p1", services.ProductUpdateInput{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "porcelain-vase", product.Slug)

	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()

	name := "Whatever"
	_, err := service.Update("missing", services.ProductUpdateInput{Name: &name})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListNormalizesFilter(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// Zero values come in from the handler; the repository sees defaults.
	mockRepo.On("List", mock.MatchedBy(func(f repositories.ProductFilter) bool {
		return f.Page == 1 && f.PageSize == 20 && f.SortBy == repositories.SortNewest
	})).Return([]models.Product{}, int64(0), nil).Once()

	_, pagination, err := service.List(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)

	// An oversized page size is clamped.
	mockRepo.On("List", mock.MatchedBy(func(f repositories.ProductFilter) bool {
		return f.PageSize == 100
	})).Return([]models.Product{}, int64(0), nil).Once()

	_, pagination, err = service.List(repositories.ProductFilter{Page: 1, PageSize: 5000})
	assert.NoError(t, err)
	assert.Equal(t, 100, pagination.PageSize)

	mockRepo.AssertExpectations(t)
}

func TestProductService_ListPaginationMath(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("List", mock.Anything).Return([]models.Product{}, int64(45), nil).Once()

	_, pagination, err := service.List(repositories.ProductFilter{Page: 2, PageSize: 20})
	assert.NoError(t, err)
	assert.Equal(t, int64(45), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestProduct_FinalPrice(t *testing.T) {
	p := &models.Product{Price: 200, Discount: 25}
	assert.Equal(t, 150.0, p.FinalPrice())

	noDiscount := &models.Product{Price: 200}
	assert.Equal(t, 200.0, noDiscount.FinalPrice())

	full := &models.Product{Price: 200, Discount: 100}
	assert.Equal(t, 0.0, full.FinalPrice())
}

func TestCategoryService_DeleteBlockedWhileInUse(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewCategoryService(mockCategories, mockProducts)

	category := &models.Category{ID: testCategoryID, Name: "Kitchen", Slug: "kitchen"}

	mockCategories.On("GetByID", testCategoryID).Return(category, nil).Once()
	mockProducts.On("CountByCategory", testCategoryID).Return(int64(3), nil).Once()

	err := service.Delete(testCategoryID)
	assert.ErrorIs(t, err, services.ErrCategoryInUse)
	mockCategories.AssertNotCalled(t, "Delete", mock.Anything)

	// Once the category is empty, deletion goes through.
	mockCategories.On("GetByID", testCategoryID).Return(category, nil).Once()
	mockProducts.On("CountByCategory", testCategoryID).Return(int64(0), nil).Once()
	mockCategories.On("Delete", testCategoryID).Return(nil).Once()

	err = service.Delete(testCategoryID)
	assert.NoError(t, err)

	mockCategories.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
