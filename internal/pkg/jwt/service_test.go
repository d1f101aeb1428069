package jwt

import (
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewHMACService("super-secret", time.Hour)
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "alice@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-8 * 24 * time.Hour)
	old := NewHMACService("secret", 7*24*time.Hour).WithClock(func() time.Time { return issued })
	tok, err := old.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = NewHMACService("secret", 7*24*time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewHMACService("right-secret", time.Hour).GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = NewHMACService("wrong-secret", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewHMACService("secret", time.Hour)
	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewHMACService("k", time.Hour).ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateAccessToken_RejectsMisconfiguration(t *testing.T) {
	t.Parallel()

	_, err := NewHMACService("", time.Hour).GenerateAccessToken(uuid.New(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("k", 0).GenerateAccessToken(uuid.New(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("k", time.Hour).GenerateAccessToken(uuid.Nil, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_ForeignIssuer(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Now()
	foreign := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   userID.String(),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
		},
	})
	tok, err := foreign.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewHMACService("secret", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateAccessToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := NewHMACService("secret", time.Hour)
	userID := uuid.New()
	a, err := svc.GenerateAccessToken(userID, "")
	require.NoError(t, err)
	b, err := svc.GenerateAccessToken(userID, "")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	ca, err := svc.ValidateToken(a)
	require.NoError(t, err)
	assert.Equal(t, Issuer, ca.Issuer)
	assert.NotEmpty(t, ca.ID)
}
