package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

// CustomerClaims полезная нагрузка токена: id клиента и его роль.
type CustomerClaims struct {
	jwt.RegisteredClaims
	ID   int64       `json:"user_id"`
	Role domain.Role `json:"role"`
}

// Caller идентичность автора запроса из токена.
func (c *CustomerClaims) Caller() domain.Caller {
	return domain.Caller{ID: c.ID, Role: c.Role}
}

func GenerateCustomerJWT(id int64, role domain.Role, expire time.Duration, key []byte) (string, error) {
	claims := CustomerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID:   id,
		Role: role,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating customer jwt token: %s", err.Error())
	}
	return token, nil
}

// ValidateCustomerJWT проверяет подпись и срок действия токена. Роль должна быть одной из известных.
func ValidateCustomerJWT(tokenString string, key []byte) (*CustomerClaims, error) {
	token, err := validateJWT(tokenString, new(CustomerClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating customer jwt token: %w", err)
	}

	claims, ok := token.Claims.(*CustomerClaims)
	if !ok || (claims.Role != domain.RoleUser && claims.Role != domain.RoleAdmin) {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
