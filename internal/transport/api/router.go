package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/storeledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"
	LoginRoute = "/login"

	CustomersRoute          = "/customers"
	CustomerRoute           = "/customers/:customer_id"
	CustomerSoftDeleteRoute = CustomerRoute + "/delete"

	BalanceRoute           = CustomerRoute + "/balance"
	BalanceSoftDeleteRoute = BalanceRoute + "/delete"

	TransactionsRoute          = CustomerRoute + "/balances/:balance_id/transactions"
	TransactionRoute           = TransactionsRoute + "/:transaction_id"
	TransactionSoftDeleteRoute = TransactionRoute + "/delete"

	ItemsRoute          = "/items"
	ItemRoute           = "/items/:item_id"
	ItemSoftDeleteRoute = ItemRoute + "/delete"

	OrdersRoute          = CustomerRoute + "/orders"
	OrderRoute           = OrdersRoute + "/:order_id"
	OrderSoftDeleteRoute = OrderRoute + "/delete"

	OrderItemsRoute          = OrderRoute + "/order_items"
	OrderItemRoute           = OrderItemsRoute + "/:order_item_id"
	OrderItemSoftDeleteRoute = OrderItemRoute + "/delete"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	CustomerService    CustomerServicer
	BalanceService     BalanceServicer
	TransactionService TransactionServicer
	ItemService        ItemServicer
	OrderService       OrderServicer
	OrderItemService   OrderItemServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.CustomerService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	balanceHandler := NewBalanceHandler(args.BalanceService)
	transactionsHandler := NewTransactionsHandler(args.TransactionService)
	itemsHandler := NewItemsHandler(args.ItemService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	orderItemsHandler := NewOrderItemsHandler(args.OrderItemService)

	api := r.Group(RouteGroup)

	api.POST(CustomersRoute, authHandler.Register)
	api.POST(LoginRoute, authHandler.Login)

	// ниже все роуты группы требуют авторизованного клиента.
	authed := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))

	authed.GET(CustomersRoute, customersHandler.Index)
	authed.GET(CustomerRoute, customersHandler.Show)
	authed.PUT(CustomerRoute, customersHandler.Replace)
	authed.PATCH(CustomerRoute, customersHandler.Patch)
	authed.DELETE(CustomerRoute, customersHandler.HardDelete)
	authed.DELETE(CustomerSoftDeleteRoute, customersHandler.SoftDelete)

	authed.GET(BalanceRoute, balanceHandler.Show)
	authed.PUT(BalanceRoute, balanceHandler.Replace)
	authed.DELETE(BalanceRoute, balanceHandler.HardDelete)
	authed.DELETE(BalanceSoftDeleteRoute, balanceHandler.SoftDelete)

	authed.GET(TransactionsRoute, transactionsHandler.Index)
	authed.POST(TransactionsRoute, transactionsHandler.Create)
	authed.GET(TransactionRoute, transactionsHandler.Show)
	authed.PUT(TransactionRoute, transactionsHandler.Replace)
	authed.PATCH(TransactionRoute, transactionsHandler.Patch)
	authed.DELETE(TransactionRoute, transactionsHandler.HardDelete)
	authed.DELETE(TransactionSoftDeleteRoute, transactionsHandler.SoftDelete)

	authed.GET(ItemsRoute, itemsHandler.Index)
	authed.POST(ItemsRoute, itemsHandler.Create)
	authed.GET(ItemRoute, itemsHandler.Show)
	authed.PUT(ItemRoute, itemsHandler.Replace)
	authed.PATCH(ItemRoute, itemsHandler.Patch)
	authed.DELETE(ItemRoute, itemsHandler.HardDelete)
	authed.DELETE(ItemSoftDeleteRoute, itemsHandler.SoftDelete)

	authed.GET(OrdersRoute, ordersHandler.Index)
	authed.POST(OrdersRoute, ordersHandler.Create)
	authed.GET(OrderRoute, ordersHandler.Show)
	authed.PUT(OrderRoute, ordersHandler.Replace)
	authed.PATCH(OrderRoute, ordersHandler.Patch)
	authed.DELETE(OrderRoute, ordersHandler.HardDelete)
	authed.DELETE(OrderSoftDeleteRoute, ordersHandler.SoftDelete)

	authed.GET(OrderItemsRoute, orderItemsHandler.Index)
	authed.POST(OrderItemsRoute, orderItemsHandler.Create)
	authed.GET(OrderItemRoute, orderItemsHandler.Show)
	authed.PUT(OrderItemRoute, orderItemsHandler.Replace)
	authed.PATCH(OrderItemRoute, orderItemsHandler.Patch)
	authed.DELETE(OrderItemRoute, orderItemsHandler.HardDelete)
	authed.DELETE(OrderItemSoftDeleteRoute, orderItemsHandler.SoftDelete)
	return r, nil
}
