package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithExpiration(-time.Minute)) // already expired

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail
	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	// Totally invalid string
	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	signer := New(WithSecretKey("secret-a"), WithExpiration(time.Minute))
	verifier := New(WithSecretKey("secret-b"), WithExpiration(time.Minute))

	token, err := signer.Generate(ctx, userID)
	assert.NoError(t, err)

	err = verifier.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := verifier.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid bearer", header: "Bearer abc123", wantToken: "abc123"},
		{name: "lowercase bearer", header: "bearer abc123", wantToken: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
