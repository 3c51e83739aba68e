package services

import (
	"context"
	"errors"

	"github.com/tasklist/webapp/internal/store"
	"github.com/tasklist/webapp/types"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email/password pair does
// not match a stored account. An unknown email and a wrong password are
// deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ErrAccountBlocked is returned when credentials match but the account
// has been blocked by an admin.
var ErrAccountBlocked = errors.New("account blocked")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// AuthService encapsulates registration and login use-cases.
type AuthService struct {
	repo UserRepository
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// RegisterInput carries the registration form fields. No strength or
// format validation is performed on any of them.
type RegisterInput struct {
	Name        string
	Contact     string
	Email       string
	Password    string
	Gender      string
	DateOfBirth string
}

// Register hashes the password and creates an active account. A
// duplicate email surfaces as store.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (types.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Name:         in.Name,
		Contact:      in.Contact,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Gender:       in.Gender,
		DateOfBirth:  in.DateOfBirth,
		Status:       types.UserStatusActive,
	})
}

// Login verifies credentials and returns the matched user for session
// snapshotting.
func (s *AuthService) Login(ctx context.Context, email, password string) (types.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}

	if user.Blocked() {
		return types.User{}, ErrAccountBlocked
	}

	return user, nil
}

// GetByID loads a user by id.
func (s *AuthService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}
