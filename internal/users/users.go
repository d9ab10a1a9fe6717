// Package users manages local accounts: registration, password login and
// listing, with bcrypt password hashes kept in a Store.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrHashing is returned when a password cannot be hashed.
	ErrHashing = errors.New("password hashing failed")
	// ErrNotFound is returned by a Store when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidUser is returned for a missing username or password.
	ErrInvalidUser = errors.New("username and password are required")
)

// User is an account as returned to clients. The password hash never leaves
// the store.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	FullName  *string   `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateRequest creates a user with optional profile fields.
type CreateRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

// NewUser is what a Store persists.
type NewUser struct {
	Username     string
	PasswordHash string
	Email        *string
	FullName     *string
}

// Store persists users.
type Store interface {
	// Insert stores u and returns it with its assigned ID. It returns
	// ErrUsernameTaken when the username exists.
	Insert(ctx context.Context, u NewUser) (User, error)
	// PasswordHash returns the user and stored hash, or ErrNotFound.
	PasswordHash(ctx context.Context, username string) (User, string, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]User, error)
}

// Service implements account operations on top of a Store.
type Service struct {
	store Store
	cost  int
	dummy []byte
}

// NewService creates a Service. A cost of 0 uses bcrypt.DefaultCost.
func NewService(store Store, cost int) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	s := &Service{store: store, cost: cost}
	// Compared against when a username is unknown so both failure paths
	// spend the same bcrypt work.
	s.dummy, _ = bcrypt.GenerateFromPassword([]byte("vango-ui"), cost)
	return s
}

// Create registers a user with optional profile fields.
func (s *Service) Create(ctx context.Context, req CreateRequest) (User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return User{}, ErrInvalidUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrHashing, err)
	}

	return s.store.Insert(ctx, NewUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        req.Email,
		FullName:     req.FullName,
	})
}

// Register creates a user from bare credentials.
func (s *Service) Register(ctx context.Context, c Credentials) (User, error) {
	return s.Create(ctx, CreateRequest{Username: c.Username, Password: c.Password})
}

// Login checks credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, c Credentials) (User, error) {
	user, hash, err := s.store.PasswordHash(ctx, strings.TrimSpace(c.Username))
	if errors.Is(err, ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummy, []byte(c.Password))
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(c.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return user, nil
}

// List returns all users, newest first.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.store.List(ctx)
}
