package services

import (
	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/pkg/cache"
	"github.com/ghuser/gudang/pkg/storage"
	"github.com/ghuser/gudang/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Recorder *RecorderService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db, a.EventBus)
	movements := postgres.NewMovementRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Recorder: NewRecorderService(products, movements, a.Storage, productCache, storage.ObjectName, a.Logger),
	}
}
