package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken создаёт access-токен. Субъект — email учётной записи:
// личность автора берётся из токена, а не из полей запроса.
func GenerateToken(secret, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email":      email,
		"role":       role,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(), // issued at — доп. уникальность
		"token_type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
