package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "portfolioai/internal/errors"
)

func newService(t *testing.T) *JWTService {
	t.Helper()
	s, err := NewJWTService("test-secret")
	require.NoError(t, err)
	return s
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.Error(t, err)
}

func TestIssueThenValidate(t *testing.T) {
	s := newService(t)

	token, err := s.IssueToken("a@x.com", 5*time.Minute)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, (5 * time.Minute).Seconds(), s.Remaining(claims).Seconds(), 5)
}

func TestIssueToken_DefaultTTL(t *testing.T) {
	s := newService(t)

	token, err := s.IssueToken("a@x.com", 0)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssueToken_RequiresSubject(t *testing.T) {
	_, err := newService(t).IssueToken("", time.Minute)
	assert.Error(t, err)
}

func TestValidateToken_Rejects(t *testing.T) {
	s := newService(t)
	valid, err := s.IssueToken("a@x.com", time.Minute)
	require.NoError(t, err)

	expired := signed(t, "test-secret", jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	otherSecret := signed(t, "another-secret", jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noSubject := signed(t, "test-secret", jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noExpiry := signed(t, "test-secret", jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "a@x.com",
	})

	// flip one character of the signature
	parts := strings.Split(valid, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	for name, token := range map[string]string{
		"expired":      expired,
		"other secret": otherSecret,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
		"tampered":     tampered,
		"garbage":      "not.a.jwt",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.ValidateToken(token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newService(t).ValidateToken(unsigned)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRemaining_Expired(t *testing.T) {
	s := newService(t)
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}}

	assert.Zero(t, s.Remaining(claims))
	assert.Zero(t, s.Remaining(nil))
}

func signed(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
