package health

import (
	"context"
	"net/http"
	"runtime"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/timezone"
	"salon/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"

	pingTimeout = 3 * time.Second
)

// Datastore is anything that can tell whether its backend answers.
type Datastore interface {
	Ping(ctx context.Context) error
}

type Memory struct {
	AllocBytes uint64 `json:"allocBytes"`
	SysBytes   uint64 `json:"sysBytes"`
	Goroutines int    `json:"goroutines"`
}

type Response struct {
	Database      string  `json:"database"`
	Cache         string  `json:"cache"`
	Automation    bool    `json:"automation"`
	Availability  bool    `json:"availability"`
	Upload        bool    `json:"upload"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptime"`
	Memory        Memory  `json:"memory"`
	Version       string  `json:"version"`
}

type Handler struct {
	db      Datastore
	cache   Datastore
	cfg     *config.Config
	otel    otel.Otel
	started time.Time
}

func New(db *postgres.Connection, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Handler {
	return NewWithDatastore(db, cache, cfg, otel)
}

func NewWithDatastore(db, cache Datastore, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		db:      db,
		cache:   cache,
		cfg:     cfg,
		otel:    otel,
		started: time.Now(),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports database and cache reachability and which integrations are configured.
// Only an unreachable database makes the instance unhealthy, the cache degrades gracefully.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	res := Response{
		Database:      StatusConnected,
		Cache:         StatusConnected,
		Automation:    handler.cfg.HasAutomationBooking(),
		Availability:  handler.cfg.HasAutomationAvailability(),
		Upload:        handler.cfg.HasUpload(),
		Timestamp:     timezone.Now().Format(constant.DateFormat),
		UptimeSeconds: time.Since(handler.started).Seconds(),
		Memory:        memory(),
		Version:       handler.cfg.Server.Version,
	}

	status := http.StatusOK

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database health check failed")

		res.Database = StatusDisconnected
		status = http.StatusServiceUnavailable
	}

	if err := handler.cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("cache health check failed")

		res.Cache = StatusDisconnected
	}

	response.NoCache(writer)
	response.WithBody(writer, status, res)
}

func memory() Memory {
	var stats runtime.MemStats

	runtime.ReadMemStats(&stats)

	return Memory{
		AllocBytes: stats.Alloc,
		SysBytes:   stats.Sys,
		Goroutines: runtime.NumGoroutine(),
	}
}
