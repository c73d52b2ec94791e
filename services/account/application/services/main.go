package services

import (
	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/services/account/infrastructure/persistence/postgres"
)

// Services aggregates the account context's application services.
type Services struct {
	Accounts *AccountService
}

// New wires the account services from shared infrastructure.
func New(a *app.Application) *Services {
	users := postgres.NewUserRepository(a.Db)
	return &Services{
		Accounts: NewAccountService(users, a.Logger),
	}
}
