package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentBalance PaymentMethod = "balance"
)

// Entity название сущности для сообщений об ошибках.
type Entity string

const (
	EntityCustomer    Entity = "customer"
	EntityBalance     Entity = "balance"
	EntityTransaction Entity = "transaction"
	EntityItem        Entity = "item"
	EntityOrder       Entity = "order"
	EntityOrderItem   Entity = "order item"
)

// StoreNoteInsufficientBalance пометка заказа, если баланса клиента не хватило на оплату позиции.
const StoreNoteInsufficientBalance = "Customer balance not sufficient"
