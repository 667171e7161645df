package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/errs"
	"github.com/Gthulhu/priosim/pkg/logger"
	"github.com/Gthulhu/priosim/pkg/util"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "priosim"

func (svc *Service) AuthEnabled() bool {
	return svc.jwtPrivateKey != nil
}

// VerifyAndGenerateToken verifies the provided public key and generates a JWT token if valid
func (svc *Service) VerifyAndGenerateToken(ctx context.Context, clientID string, publicKey string) (string, int64, error) {
	if !svc.AuthEnabled() {
		return "", 0, errs.NotFound("token authentication is disabled", domain.ErrAuthDisabled)
	}
	err := svc.VerifyPublicKey(publicKey)
	if err != nil {
		return "", 0, errs.Unauthorized("public key verification failed", err)
	}
	token, claims, err := svc.generateJWT(ctx, clientID)
	if err != nil {
		return "", 0, fmt.Errorf("JWT generation failed: %v", err)
	}
	return token, claims.ExpiresAt.Unix(), nil
}

// VerifyPublicKey verifies if the provided public key matches our private key
func (svc *Service) VerifyPublicKey(publicKeyPEM string) error {
	rsaPublicKey, err := util.PEMToRSAPublicKey(publicKeyPEM)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %v", err)
	}
	if !rsaPublicKey.Equal(&svc.jwtPrivateKey.PublicKey) {
		return fmt.Errorf("public key does not match server's private key")
	}
	return nil
}

// generateJWT generates a JWT token for authenticated client
func (svc *Service) generateJWT(ctx context.Context, clientID string) (string, domain.Claims, error) {
	expireHr := svc.tokenConfig.TokenDurationHr
	if expireHr <= 0 {
		logger.Logger(ctx).Warn().Msgf("invalid token duration hr %d, defaulting to 24 hours", expireHr)
		expireHr = 24
	}

	now := time.Now()
	claims := domain.Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHr) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   clientID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenStr, err := token.SignedString(svc.jwtPrivateKey)
	if err != nil {
		return "", domain.Claims{}, fmt.Errorf("failed to sign JWT token: %v", err)
	}
	return tokenStr, claims, nil
}

// VerifyJWTToken validates a token issued by this service and returns its claims.
func (svc *Service) VerifyJWTToken(ctx context.Context, tokenString string) (domain.Claims, error) {
	if !svc.AuthEnabled() {
		return domain.Claims{}, errs.NotFound("token authentication is disabled", domain.ErrAuthDisabled)
	}
	claims := domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &svc.jwtPrivateKey.PublicKey, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return domain.Claims{}, errs.Unauthorized("invalid or expired token", err)
	}
	if !token.Valid {
		return domain.Claims{}, errs.Unauthorized("invalid or expired token", nil)
	}
	return claims, nil
}
