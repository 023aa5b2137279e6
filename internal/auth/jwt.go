package auth

import (
	"fmt"
	"time"

	"stations-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated Discord identity. Staff is resolved
// against STAFF_USER_IDS once, at mint time.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Staff    bool   `json:"staff"`
	jwt.RegisteredClaims
}

func GenerateJWT(userID, username string, staff bool) (string, error) {
	cfg := config.GlobalConfig

	claims := Claims{
		UserID:   userID,
		Username: username,
		Staff:    staff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Auth.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("user_%s", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.JWTSecret))
}

func ValidateJWT(tokenString string) (*Claims, error) {
	cfg := config.GlobalConfig

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
