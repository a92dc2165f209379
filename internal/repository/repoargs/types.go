package repoargs

type RepositoryName string

const (
	CustomerRepoName    RepositoryName = "customer"
	BalanceRepoName     RepositoryName = "balance"
	TransactionRepoName RepositoryName = "transaction"
	ItemRepoName        RepositoryName = "item"
	OrderRepoName       RepositoryName = "order"
	OrderItemRepoName   RepositoryName = "order_item"
)
