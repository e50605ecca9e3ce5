package commands

import (
	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/infra/config"
	"github.com/CrestNiraj12/termsocial/infra/mock"
)

// services are the in-process backends shared by every command.
type services struct {
	clock    app.Clock
	ids      app.IDGenerator
	posts    *mock.PostService
	accounts *mock.AccountService
}

func newServices(cfg config.Config) services {
	clock := app.SystemClock{}
	r := mock.NewRandom(cfg.Seed)
	ids := mock.NewIDGenerator(clock, r)
	return services{
		clock:    clock,
		ids:      ids,
		posts:    mock.NewPostService(clock, r, ids),
		accounts: mock.NewAccountService(),
	}
}
