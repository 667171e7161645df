package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"testing"
	"time"

	"github.com/Gthulhu/priosim/config"
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/pkg/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicPEM, err := util.RSAPublicKeyToPEM(&key.PublicKey)
	require.NoError(t, err)
	return key, string(privatePEM), publicPEM
}

func newTokenService(t *testing.T, privatePEM string) *Service {
	t.Helper()
	svc, err := NewService(Params{
		Repo: domain.NewMockRepository(t),
		TokenConfig: config.TokenConfig{
			Enable:           true,
			RsaPrivateKeyPem: config.SecretValue(privatePEM),
			TokenDurationHr:  2,
		},
		Registerer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return svc.(*Service)
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, privatePEM, publicPEM := generateKeyPair(t)
	svc := newTokenService(t, privatePEM)
	require.True(t, svc.AuthEnabled())

	token, expiresAt, err := svc.VerifyAndGenerateToken(ctx, "client-a", publicPEM)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), time.Unix(expiresAt, 0), time.Minute)

	claims, err := svc.VerifyJWTToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "client-a", claims.ClientID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestTokenRejectsForeignKeys(t *testing.T) {
	ctx := context.Background()
	_, privatePEM, _ := generateKeyPair(t)
	otherKey, _, otherPublicPEM := generateKeyPair(t)
	svc := newTokenService(t, privatePEM)

	_, _, err := svc.VerifyAndGenerateToken(ctx, "client-a", otherPublicPEM)
	requireStatus(t, err, http.StatusUnauthorized)

	_, _, err = svc.VerifyAndGenerateToken(ctx, "client-a", "not a pem")
	requireStatus(t, err, http.StatusUnauthorized)

	forged := jwt.NewWithClaims(jwt.SigningMethodRS256, domain.Claims{
		ClientID: "mallory",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	forgedStr, err := forged.SignedString(otherKey)
	require.NoError(t, err)
	_, err = svc.VerifyJWTToken(ctx, forgedStr)
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.VerifyJWTToken(ctx, "garbage")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestTokenRejectsExpired(t *testing.T) {
	ctx := context.Background()
	key, privatePEM, _ := generateKeyPair(t)
	svc := newTokenService(t, privatePEM)

	expired := jwt.NewWithClaims(jwt.SigningMethodRS256, domain.Claims{
		ClientID: "client-a",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tokenStr, err := expired.SignedString(key)
	require.NoError(t, err)
	_, err = svc.VerifyJWTToken(ctx, tokenStr)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestTokenDisabled(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, domain.NewMockRepository(t), config.LimitsConfig{})
	assert.False(t, svc.AuthEnabled())

	_, _, err := svc.VerifyAndGenerateToken(ctx, "client-a", "")
	requireStatus(t, err, http.StatusNotFound)
	assert.ErrorIs(t, err, domain.ErrAuthDisabled)

	_, err = svc.VerifyJWTToken(ctx, "anything")
	assert.ErrorIs(t, err, domain.ErrAuthDisabled)
}

func TestNewServiceRejectsBadKey(t *testing.T) {
	_, err := NewService(Params{
		Repo:        domain.NewMockRepository(t),
		TokenConfig: config.TokenConfig{Enable: true, RsaPrivateKeyPem: "bogus"},
		Registerer:  prometheus.NewRegistry(),
	})
	assert.Error(t, err)
}
