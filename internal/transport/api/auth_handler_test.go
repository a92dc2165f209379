package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service"
	"github.com/fsdevblog/storeledger/internal/transport/api/testutils"
)

type AuthHandlerTestSuite struct {
	HandlerTestSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	args := service.CustomerArgs{
		Email:     gofakeit.Email(),
		Password:  gofakeit.Password(true, true, true, false, false, 12),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	payload := map[string]any{
		"email":      args.Email,
		"password":   args.Password,
		"first_name": args.FirstName,
		"last_name":  args.LastName,
	}

	s.Run("created", func() {
		s.mockCustomerService.EXPECT().Register(gomock.Any(), args).Return(
			&domain.Customer{
				Audit: domain.Audit{CreatedAt: time.Now()},
				ID:    10, Email: args.Email, FirstName: args.FirstName, LastName: args.LastName, Role: domain.RoleUser,
			},
			&domain.Balance{ID: 3, CustomerID: 10, Total: decimal.Zero},
			nil,
		)

		status, _, body := s.do(http.MethodPost, RouteGroup+CustomersRoute, "", payload)
		s.Require().Equal(http.StatusCreated, status, string(body))

		res := s.decode(body)
		customer, ok := res["customer"].(map[string]any)
		s.Require().True(ok)
		s.Equal(args.Email, customer["email"])
		s.NotContains(customer, "password")
		s.NotContains(customer, "role")

		balance, ok := res["balance"].(map[string]any)
		s.Require().True(ok)
		s.Equal("0.00", balance["total"])
	})

	s.Run("email in use", func() {
		s.mockCustomerService.EXPECT().Register(gomock.Any(), args).
			Return(nil, nil, fmt.Errorf("register customer: %w", domain.ErrEmailInUse))

		status, _, body := s.do(http.MethodPost, RouteGroup+CustomersRoute, "", payload)
		s.Equal(http.StatusConflict, status)
		s.Equal("email already in use", s.decode(body)["detail"])
	})

	s.Run("invalid email", func() {
		status, _, _ := s.do(http.MethodPost, RouteGroup+CustomersRoute, "", map[string]any{
			"email": "not-an-email", "password": "secret123", "first_name": "a", "last_name": "b",
		})
		s.Equal(http.StatusUnprocessableEntity, status)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	customer := &domain.Customer{ID: 10, Email: "jane@example.com", Role: domain.RoleUser}

	s.Run("json credentials", func() {
		s.mockCustomerService.EXPECT().
			Login(gomock.Any(), service.LoginArgs{Email: customer.Email, Password: "secret123"}).
			Return(customer, "token-value", nil)

		status, header, body := s.do(http.MethodPost, RouteGroup+LoginRoute, "", map[string]any{
			"email": customer.Email, "password": "secret123",
		})
		s.Require().Equal(http.StatusOK, status, string(body))
		s.Equal("Bearer token-value", header.Get("Authorization"))

		res := s.decode(body)
		s.Equal("token-value", res["access_token"])
		s.Equal("bearer", res["token_type"])
		s.EqualValues(10, res["user_id"])
		s.Equal("user", res["role"])
	})

	s.Run("form credentials", func() {
		s.mockCustomerService.EXPECT().
			Login(gomock.Any(), service.LoginArgs{Email: customer.Email, Password: "secret123"}).
			Return(customer, "token-value", nil)

		form := url.Values{"username": {customer.Email}, "password": {"secret123"}}
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    RouteGroup + LoginRoute,
			Body:   strings.NewReader(form.Encode()),
		}, testutils.WithHeader("Content-Type", "application/x-www-form-urlencoded"))
		s.Require().NoError(err)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()
		s.Equal(http.StatusOK, res.StatusCode)
	})

	s.Run("invalid credentials", func() {
		s.mockCustomerService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, "", fmt.Errorf("login: %w", domain.ErrInvalidCredentials))

		status, _, body := s.do(http.MethodPost, RouteGroup+LoginRoute, "", map[string]any{
			"email": customer.Email, "password": "wrong-password",
		})
		s.Equal(http.StatusForbidden, status)
		s.Equal("invalid credentials", s.decode(body)["detail"])
	})

	s.Run("missing password", func() {
		status, _, _ := s.do(http.MethodPost, RouteGroup+LoginRoute, "", map[string]any{"email": customer.Email})
		s.Equal(http.StatusUnprocessableEntity, status)
	})
}
