package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
)

// CredentialStore is the slice of the admin auth repo the authenticator needs.
type CredentialStore interface {
	Find() (*models.AdminAuth, error)
}

// Authenticator verifies the single shared admin secret and mints the session
// tokens the admin middleware checks. The password is compared against a
// bcrypt hash; there are no fallback secrets.
type Authenticator struct {
	credentials CredentialStore
	secret      []byte
	tokenTTL    time.Duration
}

func NewAuthenticator(credentials CredentialStore, secret string) Authenticator {
	return Authenticator{
		credentials: credentials,
		secret:      []byte(secret),
		tokenTTL:    12 * time.Hour,
	}
}

// VerifyAdmin checks the password against the stored hash and returns a
// signed session token on success.
func (a Authenticator) VerifyAdmin(password string) (string, error) {
	auth, err := a.credentials.Find()
	if err != nil {
		return "", errs.NewDatabaseError("find", "admin credentials", err)
	}
	if auth == nil {
		return "", errs.NewUnauthorizedError("admin credentials not configured")
	}
	if bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(password)) != nil {
		return "", errs.NewUnauthorizedError("invalid password")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to sign session token", err)
	}
	return token, nil
}

// ValidateToken parses and verifies a session token minted by VerifyAdmin.
func (a Authenticator) ValidateToken(tokenString string) error {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return errs.NewUnauthorizedError("invalid session token")
	}
	return nil
}
