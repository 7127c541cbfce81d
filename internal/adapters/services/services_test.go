package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"notetaking/internal/adapters/services"
	domainservices "notetaking/internal/domain/services"
	ports "notetaking/internal/ports/services"
)

const (
	testSecret = "test-secret"
	testUserID = "1f0e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b"
	testEmail  = "user@example.com"

	msgNoErrorValidPassword = "should not return error for valid password"
	msgHashVerifiable       = "created hash should be verifiable"
)

func TestBcrypt_Hash(t *testing.T) {
	service := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	t.Run("valid password", func(t *testing.T) {
		hash, err := service.Hash(ctx, "secret1")
		require.NoError(t, err, msgNoErrorValidPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")), msgHashVerifiable)
	})

	t.Run("salted hashes differ", func(t *testing.T) {
		first, err := service.Hash(ctx, "secret1")
		require.NoError(t, err)
		second, err := service.Hash(ctx, "secret1")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	for _, tc := range []struct {
		name     string
		password string
	}{
		{"empty", ""},
		{"short", "12345"},
		{"longer than bcrypt limit", strings.Repeat("a", 73)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := service.Hash(ctx, tc.password)
			require.ErrorIs(t, err, domainservices.ErrInvalidPassword)
			assert.Empty(t, hash)
		})
	}

	t.Run("boundary lengths accepted", func(t *testing.T) {
		_, err := service.Hash(ctx, "123456")
		require.NoError(t, err)
		_, err = service.Hash(ctx, strings.Repeat("a", 72))
		require.NoError(t, err)
	})
}

func TestBcrypt_Cost(t *testing.T) {
	ctx := context.Background()

	hash, err := services.NewBcrypt(1).Hash(ctx, "secret1")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost, "invalid cost falls back to default")
}

func TestBcrypt_Verify(t *testing.T) {
	service := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "secret1")
	require.NoError(t, err)

	ok, err := service.Verify(ctx, "secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Verify(ctx, "wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = service.Verify(ctx, "", hash)
	require.ErrorIs(t, err, domainservices.ErrInvalidPassword)

	_, err = service.Verify(ctx, "secret1", "not-a-bcrypt-hash")
	require.Error(t, err)
}

func TestJWT_RoundTrip(t *testing.T) {
	service := services.NewJWT(testSecret, time.Hour)
	ctx := context.Background()

	token, expiresAt, err := service.GenerateToken(ctx, testUserID, testEmail)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity, err := service.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, identity.ID)
	assert.Equal(t, testEmail, identity.Email)
}

func TestJWT_PayloadShape(t *testing.T) {
	token, _, err := services.NewJWT(testSecret, 0).GenerateToken(context.Background(), testUserID, testEmail)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims["id"])
	assert.Equal(t, testEmail, claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, domainservices.DefaultTokenTTL, exp.Sub(iat.Time))
}

func signed(t *testing.T, method jwt.SigningMethod, key any, claims services.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWT_ValidateToken_Failures(t *testing.T) {
	service := services.NewJWT(testSecret, time.Hour)
	ctx := context.Background()
	now := time.Now()

	valid := services.Claims{
		ID:    testUserID,
		Email: testEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	expired := valid
	expired.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}

	noID := valid
	noID.ID = ""

	noExp := valid
	noExp.RegisteredClaims = jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"garbage", "not.a.token", domainservices.ErrInvalidJWTToken},
		{"empty", "", domainservices.ErrInvalidJWTToken},
		{"wrong secret", signed(t, jwt.SigningMethodHS256, []byte("other"), valid), domainservices.ErrInvalidJWTToken},
		{"expired", signed(t, jwt.SigningMethodHS256, []byte(testSecret), expired), domainservices.ErrExpiredJWTToken},
		{"other hmac algorithm", signed(t, jwt.SigningMethodHS512, []byte(testSecret), valid), domainservices.ErrInvalidJWTToken},
		{"none algorithm", signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid), domainservices.ErrInvalidJWTToken},
		{"empty id", signed(t, jwt.SigningMethodHS256, []byte(testSecret), noID), domainservices.ErrInvalidJWTToken},
		{"no expiry", signed(t, jwt.SigningMethodHS256, []byte(testSecret), noExp), domainservices.ErrInvalidJWTToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := service.ValidateToken(ctx, tt.token)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, identity)
		})
	}
}

func TestJWT_EmptySecret(t *testing.T) {
	_, _, err := services.NewJWT("", time.Hour).GenerateToken(context.Background(), testUserID, testEmail)
	require.ErrorIs(t, err, domainservices.ErrGeneratingJWTToken)
}

func TestServiceFactory(t *testing.T) {
	factory := services.NewServiceFactory(testSecret, time.Hour, bcrypt.MinCost)
	require.NotNil(t, factory)

	assert.Implements(t, (*ports.PasswordService)(nil), factory.PasswordService())
	assert.Implements(t, (*ports.TokenService)(nil), factory.TokenService())
	assert.Same(t, factory.TokenService(), factory.TokenService())
}
