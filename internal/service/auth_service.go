package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"farmlink/internal/model"
	"farmlink/internal/repository"
	"farmlink/internal/utils"
)

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrInvalidRole        = errors.New("role must be farmer or vendor")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidPhone       = errors.New("enter a valid phone number (10-15 digits)")
	ErrUserAlreadyExists  = errors.New("user with this phone number already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
)

// Login identifier: digits only, no separators or country-code prefix.
var phoneRe = regexp.MustCompile(`^\d{10,15}$`)

// IsValidationError reports whether err is one of the registration input
// failures that map to a 400 response.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrFieldsRequired) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrInvalidPhone)
}

// AuthService provides registration, login and profile lookup
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, phone, password string) (*model.User, string, error)
	Profile(ctx context.Context, userID int) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account. It does not log the user in; the
// client is expected to call Login afterwards.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	location := strings.TrimSpace(req.Location)

	if fullName == "" || phone == "" || location == "" || req.Role == "" || req.Password == "" {
		return nil, ErrFieldsRequired
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if !phoneRe.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	existingUser, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FullName:     fullName,
		Phone:        phone,
		Location:     location,
		Role:         req.Role,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token. Unknown phone and
// wrong password produce the same error so callers learn nothing about
// which accounts exist.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Phone, user.Role, user.FullName, user.Location)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Profile returns the non-secret fields of a user
func (s *authService) Profile(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = ""
	return user, nil
}
