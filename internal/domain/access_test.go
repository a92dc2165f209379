package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	admin := Caller{ID: 1, Role: RoleAdmin}
	user := Caller{ID: 2, Role: RoleUser}

	cases := []struct {
		name    string
		caller  Caller
		owner   int64
		allowed []Role
		wantErr bool
		wantMsg string
	}{
		{name: "admin any owner", caller: admin, owner: 99, allowed: []Role{RoleAdmin, RoleUser}},
		{name: "user self", caller: user, owner: 2, allowed: []Role{RoleAdmin, RoleUser}},
		{
			name: "user other", caller: user, owner: 3, allowed: []Role{RoleAdmin, RoleUser},
			wantErr: true, wantMsg: "not authorized to perform this action",
		},
		{
			name: "user on admin route", caller: user, owner: 2, allowed: []Role{RoleAdmin},
			wantErr: true, wantMsg: "only admin authorized to perform this action",
		},
		{
			name: "admin on user route", caller: admin, owner: 1, allowed: []Role{RoleUser},
			wantErr: true, wantMsg: "only user authorized to perform this action",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.caller, tc.owner, tc.allowed...)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrForbidden)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(EntityOrderItem, 7)
	require.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, "order item with id 7 was not found", err.Error())
	assert.Equal(t, "customer was not found", NewNotFoundError(EntityCustomer, 0).Error())
}
