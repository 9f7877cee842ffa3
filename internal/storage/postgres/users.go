package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/storage"
	"invoice-dashboard/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s", email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// Create registers a new user, hashing the password before the insert.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password
	`

	var user models.User
	err = r.db.QueryRow(ctx, query, req.Name, req.Email, string(hashedPassword)).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Printf("Attempted to create user with duplicate email %s: %v", req.Email, err)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return &user, nil
}
