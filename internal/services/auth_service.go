package services

import (
	"context"
	"errors"
	"log"
	"time"

	"invoice-dashboard/internal/auth"
	"invoice-dashboard/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// credentialsProvider signs users in against the user store and issues
// JWT session tokens. It implements auth.Provider, so the auth bridge can
// classify its failures.
type credentialsProvider struct {
	users         storage.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewCredentialsProvider creates the credentials-backed auth.Provider.
func NewCredentialsProvider(users storage.UserRepository, jwtSecret string, jwtExpiration time.Duration) auth.Provider {
	return &credentialsProvider{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (p *credentialsProvider) SignIn(ctx context.Context, creds auth.Credentials) (string, error) {
	user, err := p.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Sign-in attempt failed for email %s: user not found", creds.Email)
			return "", &auth.Error{Kind: auth.KindCredentialsSignin, Err: err}
		}
		log.Printf("Error fetching user by email %s during sign-in: %v", creds.Email, err)
		return "", &auth.Error{Kind: auth.KindCallbackRouteError, Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Printf("Sign-in attempt failed for email %s: invalid password", creds.Email)
		return "", &auth.Error{Kind: auth.KindCredentialsSignin, Err: err}
	}

	// Generate JWT Token
	expirationTime := time.Now().Add(p.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return "", &auth.Error{Kind: auth.KindCallbackRouteError, Err: err}
	}

	return tokenString, nil
}
