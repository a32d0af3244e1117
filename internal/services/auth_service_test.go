package services_test

import (
	"testing"
	"time"

	"homestore/internal/models"
	"homestore/internal/repositories"
	"homestore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret", 24*time.Hour)

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "11111111-1111-1111-1111-111111111111"
	}).Return(nil).Once()

	user, token, err := service.Register(services.RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleCustomer, user.Role)
	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret", 24*time.Hour)

	existing := &models.User{ID: "u1", Email: "taken@example.com"}
	mockRepo.On("GetByEmail", "taken@example.com").Return(existing, nil).Once()

	_, _, err := service.Register(services.RegisterInput{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterLosesCreationRace(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret", 24*time.Hour)

	// The email is free at lookup time but the insert hits the unique index.
	mockRepo.On("GetByEmail", "raced@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate).Once()

	_, _, err := service.Register(services.RegisterInput{
		Name:     "Raced",
		Email:    "raced@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret", 24*time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{
		ID:       "22222222-2222-2222-2222-222222222222",
		Email:    "user@example.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	// Successful login issues a token carrying the user id and role.
	mockRepo.On("GetByEmail", "user@example.com").Return(stored, nil).Once()
	user, token, err := service.Login("user@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, claims["user_id"])
	assert.Equal(t, models.RoleAdmin, claims["role"])

	// Wrong password.
	mockRepo.On("GetByEmail", "user@example.com").Return(stored, nil).Once()
	_, _, err = service.Login("user@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email comes back as the same error.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = service.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateTokenRejectsTampering(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret", 24*time.Hour)
	other := services.NewAuthService(mockRepo, "another_secret", 24*time.Hour)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "u1", Email: "user@example.com", Password: string(hashed), Role: models.RoleCustomer}
	mockRepo.On("GetByEmail", "user@example.com").Return(stored, nil).Once()

	_, token, err := service.Login("user@example.com", "password123")
	assert.NoError(t, err)

	// A token signed with a different secret does not validate.
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_SelfModificationGuards(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	admin := &models.User{ID: "admin-1", Email: "admin@example.com", Role: models.RoleAdmin}

	// Changing your own role is refused.
	mockRepo.On("GetByID", "admin-1").Return(admin, nil).Once()
	role := models.RoleCustomer
	_, err := service.Update("admin-1", "admin-1", services.UserUpdateInput{Role: &role})
	assert.ErrorIs(t, err, services.ErrOwnRoleChange)

	// Re-asserting the current role is a no-op, not a violation.
	mockRepo.On("GetByID", "admin-1").Return(admin, nil).Once()
	mockRepo.On("Update", admin).Return(nil).Once()
	same := models.RoleAdmin
	_, err = service.Update("admin-1", "admin-1", services.UserUpdateInput{Role: &same})
	assert.NoError(t, err)

	// Deleting your own account is refused before the repository is touched.
	err = service.Delete("admin-1", "admin-1")
	assert.ErrorIs(t, err, services.ErrOwnAccountDelete)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)

	mockRepo.AssertExpectations(t)
}
