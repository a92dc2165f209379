package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateCustomerJWT(42, domain.RoleAdmin, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateCustomerJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Caller{ID: 42, Role: domain.RoleAdmin}, claims.Caller())

	_, err = ValidateCustomerJWT(token, []byte("other"))
	require.Error(t, err)

	expired, err := GenerateCustomerJWT(42, domain.RoleUser, -time.Minute, key)
	require.NoError(t, err)
	_, err = ValidateCustomerJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)

	unknownRole, err := GenerateCustomerJWT(42, domain.Role("root"), time.Hour, key)
	require.NoError(t, err)
	_, err = ValidateCustomerJWT(unknownRole, key)
	require.ErrorIs(t, err, ErrInvalidClaims)
}
