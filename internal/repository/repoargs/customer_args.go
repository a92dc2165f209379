package repoargs

import "github.com/fsdevblog/storeledger/internal/domain"

type CreateCustomer struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}
