package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Issue выдаёт HS256 токен, subject - id сотрудника.
func Issue(secret, employeeID string, ttl time.Duration) (string, error) {
	const op = "lib.token.Issue"

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   employeeID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Parse проверяет подпись и срок действия, возвращает id сотрудника.
func Parse(tokenString, secret string) (string, error) {
	const op = "lib.token.Parse"

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.Subject, nil
}

// Issuer выдаёт токены с общим секретом и сроком жизни.
type Issuer struct {
	Secret string
	TTL    time.Duration
}

func (i Issuer) Issue(employeeID string) (string, error) {
	return Issue(i.Secret, employeeID, i.TTL)
}
