package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotExist       = errors.New("token not exist")
	errCouldNotValidateJWT = errors.New("could not validate credentials")
)

const CurrentCallerKey = "currentCaller"

const bearerPrefix = "Bearer "

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется
// ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.CustomerClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(tokenHeader, bearerPrefix) {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateCustomerJWT(strings.TrimPrefix(tokenHeader, bearerPrefix), jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentCallerKey)
// id и роль клиента из токена.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			_ = c.AbortWithError(http.StatusUnauthorized, errCouldNotValidateJWT).SetType(gin.ErrorTypePublic)
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentCallerKey, claims.Caller())
		c.Next()
	}
}

// CallerFromContext возвращает автора запроса, установленного AuthRequired. Если значения нет,
// вернется пустой Caller, который не проходит ни одну проверку роли.
func CallerFromContext(c *gin.Context) domain.Caller {
	v, exist := c.Get(CurrentCallerKey)
	if !exist {
		return domain.Caller{}
	}
	caller, ok := v.(domain.Caller)
	if !ok {
		return domain.Caller{}
	}
	return caller
}
