package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(ctx context.Context, email, password string, allergies []string) (*User, error) {
	if email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	if allergies == nil {
		allergies = []string{}
	}

	user := &User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashedPassword),
		Allergies: allergies,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GET PROFILE
func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UPDATE ALLERGIES (full replace, no merge)
func (s *Service) UpdateAllergies(ctx context.Context, userID string, allergies []string) error {
	if allergies == nil {
		allergies = []string{}
	}
	return s.repo.UpdateAllergies(ctx, userID, allergies)
}
