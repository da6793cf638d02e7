package service

import (
	"context"
	"testing"

	"farmlink/internal/model"
	"farmlink/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func validRegisterRequest() model.RegisterRequest {
	return model.RegisterRequest{
		FullName: "Asha Patil",
		Phone:    "9876543210",
		Location: "Pune",
		Role:     model.RoleFarmer,
		Password: "secret1",
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	repo.On("FindByPhone", mock.Anything, "9876543210").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Register(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "Asha Patil", user.FullName)
	assert.Equal(t, model.RoleFarmer, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", user.PasswordHash))
	repo.AssertExpectations(t)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.RegisterRequest)
		wantErr error
	}{
		{"missing name", func(r *model.RegisterRequest) { r.FullName = "  " }, ErrFieldsRequired},
		{"missing location", func(r *model.RegisterRequest) { r.Location = "" }, ErrFieldsRequired},
		{"bad role", func(r *model.RegisterRequest) { r.Role = "admin" }, ErrInvalidRole},
		{"short password", func(r *model.RegisterRequest) { r.Password = "abc12" }, ErrPasswordTooShort},
		{"phone too short", func(r *model.RegisterRequest) { r.Phone = "12345" }, ErrInvalidPhone},
		{"phone with letters", func(r *model.RegisterRequest) { r.Phone = "98765abc10" }, ErrInvalidPhone},
		{"phone too long", func(r *model.RegisterRequest) { r.Phone = "1234567890123456" }, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	repo.On("FindByPhone", mock.Anything, "9876543210").Return(&model.User{ID: 3, Phone: "9876543210"}, nil)

	// A second registration with the same phone fails even when every other
	// field differs.
	req := validRegisterRequest()
	req.FullName = "Someone Else"
	req.Location = "Nagpur"
	req.Role = model.RoleVendor
	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.False(t, IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_TrimsPhone(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	repo.On("FindByPhone", mock.Anything, "9876543210").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	req := validRegisterRequest()
	req.Phone = "  9876543210  "
	user, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "9876543210", user.Phone)
	repo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	repo := new(mockUserRepo)
	jwtUtil := utils.NewJWTUtil("secret", 24)
	svc := NewAuthService(repo, jwtUtil)

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	repo.On("FindByPhone", mock.Anything, "9876543210").Return(&model.User{
		ID:           1,
		FullName:     "Asha Patil",
		Phone:        "9876543210",
		Location:     "Pune",
		Role:         model.RoleFarmer,
		PasswordHash: hash,
	}, nil)

	user, token, err := svc.Login(context.Background(), "9876543210", "secret1")

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "9876543210", claims.Phone)
	assert.Equal(t, model.RoleFarmer, claims.Role)
	assert.Equal(t, "Asha Patil", claims.FullName)
	assert.Equal(t, "Pune", claims.Location)
}

// Unknown phone and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	repo.On("FindByPhone", mock.Anything, "9876543210").Return(&model.User{
		ID:           1,
		Phone:        "9876543210",
		PasswordHash: hash,
	}, nil)
	repo.On("FindByPhone", mock.Anything, "0000000000").Return(nil, nil)

	_, _, wrongPassErr := svc.Login(context.Background(), "9876543210", "not-the-password")
	_, _, unknownPhoneErr := svc.Login(context.Background(), "0000000000", "secret1")

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownPhoneErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownPhoneErr.Error())
}

func TestAuthService_Profile(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	repo.On("FindByID", mock.Anything, 1).Return(&model.User{
		ID:           1,
		FullName:     "Asha Patil",
		Phone:        "9876543210",
		PasswordHash: "hashed",
	}, nil)

	user, err := svc.Profile(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Asha Patil", user.FullName)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	repo.On("FindByID", mock.Anything, 42).Return(nil, nil)

	_, err := svc.Profile(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
