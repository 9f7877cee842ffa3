package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoice-dashboard/internal/api/handlers"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of storage.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

func setupAuthRouter(users storage.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewAuthHandler(nil, users, validator.New())
	router.POST("/auth/register", h.Register)
	return router
}

func postJSON(router *gin.Engine, target string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupAuthRouter(mockRepo)

	userID := uuid.New()
	req := dto.CreateUserRequest{Name: "Amy Burns", Email: "amy@example.com", Password: "secret123"}
	mockRepo.On("Create", mock.Anything, &req).Return(&models.User{
		ID:           userID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: "$2a$10$hash",
	}, nil).Once()

	rec := postJSON(router, "/auth/register", req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "Amy Burns", resp.Name)
	assert.Equal(t, "amy@example.com", resp.Email)
	// The password hash must not appear anywhere in the response.
	assert.NotContains(t, rec.Body.String(), "hash")
	mockRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupAuthRouter(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()

	rec := postJSON(router, "/auth/register", dto.CreateUserRequest{
		Name:     "Amy Burns",
		Email:    "amy@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegister_ValidationFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	router := setupAuthRouter(mockRepo)

	// Missing name, malformed email, short password.
	rec := postJSON(router, "/auth/register", dto.CreateUserRequest{
		Email:    "not-an-email",
		Password: "abc",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "Create")
}
