package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/gudang/pkg/cache"
	"github.com/ghuser/gudang/pkg/database"
	"github.com/ghuser/gudang/pkg/events"
	"github.com/ghuser/gudang/pkg/logger"
	"github.com/ghuser/gudang/pkg/storage"
	"github.com/ghuser/gudang/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Each service's route registration receives this container and wires its
// own repositories and application services from it.
//
// Logging: app.Logger is backed by a trace-aware handler — use the context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "movement recorded", "product_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	Storage        *storage.ObjectStore
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store
}
