package services

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	apperrors "garagespace/errors"

	"github.com/dgrijalva/jwt-go"
)

// UserInfo is the identity claim embedded in access tokens
type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken mints an access token valid for the given number of minutes
func GenerateToken(userInfo UserInfo, minutes int) (string, error) {
	claims := Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(minutes) * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("ACCESS_TOKEN_SECRET")))
}

// GetUserIDFromToken extracts the user id and role from a bearer token
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot decode token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot parse token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "token carries no user info", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "token carries no user id", nil)
	}

	role, okRole := userInfo["role"].(string)
	if !okRole {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "token carries no role", nil)
	}

	return uint(userID), role, nil
}
