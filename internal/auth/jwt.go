package auth

import (
	"time"

	"libraryapi/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Sub  string      `json:"sub"`  // user id
	Role entity.Role `json:"role"` // ADMIN/MEMBER
	jwt.RegisteredClaims
}

func GenerateToken(secret, userID string, role entity.Role, ttl time.Duration) (string, error) {
	c := Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
