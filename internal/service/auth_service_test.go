package service

import (
	"context"
	"testing"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newAuthService(t *testing.T) (AuthService, *MockUserRepository) {
	t.Helper()
	userRepo := new(MockUserRepository)
	return NewAuthService(userRepo, testJWTSecret, zerolog.Nop()), userRepo
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAuthService(t)

	userRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

	resp, err := svc.Register(ctx, &model.RegisterRequest{
		Email:    "Asha@Example.com",
		Password: "s3cret-pass",
		Name:     "Asha",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.NotEqual(t, "s3cret-pass", resp.User.PasswordHash)

	// The stored hash must verify against the original password.
	created := userRepo.Calls[1].Arguments.Get(1).(*model.User)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))

	// The issued token must parse with the configured secret and carry the
	// user ID claim the middleware looks for.
	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, created.ID, claims["user_id"])
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAuthService(t)

	userRepo.On("GetByEmail", ctx, "asha@example.com").Return(&model.User{ID: "u1"}, nil)

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "asha@example.com", Password: "pw123456"})

	assert.Equal(t, model.ErrEmailTaken, err)
	userRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: "u1", Email: "asha@example.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		svc, userRepo := newAuthService(t)
		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(user, nil)

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "right-password"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo := newAuthService(t)
		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(user, nil)

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "wrong"})
		assert.Equal(t, model.ErrUnauthorised, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo := newAuthService(t)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		assert.Equal(t, model.ErrUnauthorised, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "", Password: ""})
		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
	})
}
