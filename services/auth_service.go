package services

import (
	"context"
	"os"

	apperrors "garagespace/errors"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored bcrypt hash against a candidate password
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GoogleIdentity is the subset of Google ID-token claims used for sign-in
type GoogleIdentity struct {
	Email string
	Name  string
}

// VerifyGoogleIDToken validates a Google ID token against our client id and
// extracts the account identity
func VerifyGoogleIDToken(ctx context.Context, token string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid Google token", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Google token carries no email", nil)
	}
	name, _ := payload.Claims["name"].(string)

	return &GoogleIdentity{Email: email, Name: name}, nil
}
