package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/logger"
	"github.com/fsdevblog/storeledger/internal/service/tokens"
	"github.com/fsdevblog/storeledger/internal/transport/api/mocks"
	"github.com/fsdevblog/storeledger/internal/transport/api/testutils"
)

// HandlerTestSuite общая обвязка хендлеров: роутер на моках сервисов и токены двух ролей.
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	mockCustomerService    *mocks.MockCustomerServicer
	mockBalanceService     *mocks.MockBalanceServicer
	mockTransactionService *mocks.MockTransactionServicer
	mockItemService        *mocks.MockItemServicer
	mockOrderService       *mocks.MockOrderServicer
	mockOrderItemService   *mocks.MockOrderItemServicer

	admin      domain.Caller
	user       domain.Caller
	adminToken string
	userToken  string
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.mockCustomerService = mocks.NewMockCustomerServicer(mockCtrl)
	s.mockBalanceService = mocks.NewMockBalanceServicer(mockCtrl)
	s.mockTransactionService = mocks.NewMockTransactionServicer(mockCtrl)
	s.mockItemService = mocks.NewMockItemServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockOrderItemService = mocks.NewMockOrderItemServicer(mockCtrl)

	router, err := New(RouterArgs{
		Logger:             logger.New(io.Discard),
		CustomerService:    s.mockCustomerService,
		BalanceService:     s.mockBalanceService,
		TransactionService: s.mockTransactionService,
		ItemService:        s.mockItemService,
		OrderService:       s.mockOrderService,
		OrderItemService:   s.mockOrderItemService,
		JWTSecretKey:       s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router

	s.admin = domain.Caller{ID: 1, Role: domain.RoleAdmin}
	s.user = domain.Caller{ID: 2, Role: domain.RoleUser}
	s.adminToken = s.token(s.admin)
	s.userToken = s.token(s.user)
}

func (s *HandlerTestSuite) token(caller domain.Caller) string {
	token, err := tokens.GenerateCustomerJWT(caller.ID, caller.Role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// do выполняет запрос и возвращает статус, заголовки и тело ответа.
func (s *HandlerTestSuite) do(method, url, token string, payload any) (int, http.Header, []byte) {
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		s.Require().NoError(err)
		body = bytes.NewReader(raw)
	}

	reqOpts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token)))
	}

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, reqOpts...)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	raw, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, res.Header, raw
}

func (s *HandlerTestSuite) decode(raw []byte) map[string]any {
	var v map[string]any
	s.Require().NoError(json.Unmarshal(raw, &v), string(raw))
	return v
}

func (s *HandlerTestSuite) decodeList(raw []byte) []map[string]any {
	var v []map[string]any
	s.Require().NoError(json.Unmarshal(raw, &v), string(raw))
	return v
}
