package user

import (
	"context"
	"errors"
	"strings"

	"github.com/costumerental/costume-rental-backend/internal/auth"
)

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Role     Role
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	role := req.Role
	if role == "" {
		role = RoleClient
	}
	if role != RoleClient && role != RoleAdmin {
		return nil, ErrInvalidRole
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
