package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsdevblog/storeledger/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantPublic string
	}{
		{
			name:       "not found keeps entity message",
			err:        fmt.Errorf("get order: %w", domain.NewNotFoundError(domain.EntityOrder, 3)),
			wantStatus: http.StatusNotFound,
			wantPublic: "order with id 3 was not found",
		},
		{
			name:       "validation",
			err:        fmt.Errorf("create order item: %w", domain.NewValidationError("quantity", "must be greater than zero")),
			wantStatus: http.StatusBadRequest,
			wantPublic: "invalid quantity: must be greater than zero",
		},
		{
			name:       "stock",
			err:        fmt.Errorf("patch order item: %w", domain.ErrQuantityExceedsStock),
			wantStatus: http.StatusUnprocessableEntity,
			wantPublic: "ordered quantity exceeds stock",
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("create customer: %w", domain.ErrDuplicateKey),
			wantStatus: http.StatusConflict,
			wantPublic: "duplicate key",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, public := classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantPublic == "" {
				assert.NoError(t, public)
				return
			}
			assert.EqualError(t, public, tc.wantPublic)
		})
	}
}
