package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Issuer signs and verifies the two token kinds. Access tokens carry their own
// expiry; refresh tokens deliberately do not — their lifetime is enforced by the
// registry, not by the token. The two kinds are signed with distinct secrets so
// one can never be presented in place of the other.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
}

func NewIssuer(accessSecret string, refreshSecret string, accessTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
	}
}

func (i *Issuer) IssueAccess(subjectID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) IssueRefresh(subjectID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  subjectID,
		IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccess checks signature and expiry and returns the subject id.
func (i *Issuer) VerifyAccess(tokenString string) (string, error) {
	return verify(tokenString, i.accessSecret)
}

// VerifyRefresh checks the signature and returns the subject id. Expiry is the
// registry's concern.
func (i *Issuer) VerifyRefresh(tokenString string) (string, error) {
	return verify(tokenString, i.refreshSecret)
}

func verify(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}

	return claims.Subject, nil
}
