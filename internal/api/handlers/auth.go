package handlers

import (
	"errors"
	"log"
	"net/http"

	"invoice-dashboard/internal/auth"
	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds dependencies for the sign-in and registration flows.
type AuthHandler struct {
	provider  auth.Provider
	users     storage.UserRepository
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(provider auth.Provider, users storage.UserRepository, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		provider:  provider,
		users:     users,
		validator: validate,
	}
}

// Login godoc
// @Summary      Sign in with credentials
// @Description  Attempts a credentials sign-in. Rejected credentials and recognized sign-in faults return a user-facing message; anything else is an internal error.
// @Tags         auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200 {object}  map[string]string "token"
// @Failure      400 {object}  map[string]string "Bad Request"
// @Failure      401 {object}  map[string]string "message"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	creds := auth.Credentials{Email: req.Email, Password: req.Password}
	token, message, err := auth.Authenticate(c.Request.Context(), h.provider, creds)
	if err != nil {
		// Unrecognized failure: not an authentication outcome, let the
		// infrastructure report it.
		log.Printf("Login: Unexpected error during sign-in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account. The password is hashed before storage and never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body dto.CreateUserRequest true "Name, email and password"
// @Success      201 {object}  dto.UserResponse "User created"
// @Failure      400 {object}  map[string]string "Bad Request"
// @Failure      409 {object}  map[string]string "Conflict - email already registered"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		} else {
			log.Printf("Register: Error creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}
