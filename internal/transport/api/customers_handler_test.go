package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/storeledger/internal/domain"
)

type CustomersHandlerTestSuite struct {
	HandlerTestSuite
}

func TestCustomersHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomersHandlerTestSuite))
}

func (s *CustomersHandlerTestSuite) TestShow() {
	customer := &domain.Customer{ID: s.user.ID, Email: "jane@example.com", Role: domain.RoleUser}

	s.mockCustomerService.EXPECT().Get(gomock.Any(), s.user, s.user.ID).Return(customer, nil)
	s.mockCustomerService.EXPECT().Get(gomock.Any(), s.user, int64(3)).
		Return(nil, fmt.Errorf("get customer: %w", &domain.ForbiddenError{}))
	s.mockCustomerService.EXPECT().Get(gomock.Any(), s.admin, s.user.ID).Return(customer, nil)

	cases := []struct {
		name       string
		token      string
		id         int64
		wantStatus int
		wantRole   bool
	}{
		{name: "self", token: s.userToken, id: s.user.ID, wantStatus: http.StatusOK},
		{name: "other customer", token: s.userToken, id: 3, wantStatus: http.StatusForbidden},
		{name: "admin", token: s.adminToken, id: s.user.ID, wantStatus: http.StatusOK, wantRole: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, _, body := s.do(http.MethodGet, fmt.Sprintf("%s/customers/%d", RouteGroup, tc.id), tc.token, nil)
			s.Require().Equal(tc.wantStatus, status, string(body))

			res := s.decode(body)
			if tc.wantStatus != http.StatusOK {
				s.Equal("not authorized to perform this action", res["detail"])
				return
			}
			s.Equal(customer.Email, res["email"])
			if tc.wantRole {
				s.Equal("user", res["role"])
			} else {
				s.NotContains(res, "role")
			}
		})
	}
}

func (s *CustomersHandlerTestSuite) TestPatchPassesOnlyPresentFields() {
	name := "Jane"
	s.mockCustomerService.EXPECT().
		Patch(gomock.Any(), s.user, s.user.ID, domain.CustomerPatch{FirstName: &name}).
		Return(&domain.Customer{ID: s.user.ID, FirstName: name}, nil)

	status, _, body := s.do(http.MethodPatch, fmt.Sprintf("%s/customers/%d", RouteGroup, s.user.ID), s.userToken,
		map[string]any{"first_name": name})
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Equal(name, s.decode(body)["first_name"])
}

func (s *CustomersHandlerTestSuite) TestSoftDelete() {
	s.mockCustomerService.EXPECT().SoftDelete(gomock.Any(), s.user, s.user.ID).Return(nil)

	status, _, body := s.do(http.MethodDelete, fmt.Sprintf("%s/customers/%d/delete", RouteGroup, s.user.ID),
		s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.Equal(fmt.Sprintf("customer with id %d softly deleted", s.user.ID), s.decode(body)["detail"])
}

func (s *CustomersHandlerTestSuite) TestBalanceReplace() {
	s.mockBalanceService.EXPECT().Replace(gomock.Any(), s.admin, s.user.ID, gomock.Any()).
		Return(&domain.Balance{ID: 1, CustomerID: s.user.ID}, nil)

	url := fmt.Sprintf("%s/customers/%d/balance", RouteGroup, s.user.ID)

	status, _, body := s.do(http.MethodPut, url, s.adminToken, map[string]any{"total": "0"})
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Equal("0.00", s.decode(body)["total"])

	status, _, _ = s.do(http.MethodPut, url, s.adminToken, map[string]any{"total": "-1"})
	s.Equal(http.StatusUnprocessableEntity, status)
}
