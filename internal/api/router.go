package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shadyltdcry-byte/classiklust/internal/api/handler"
	"github.com/shadyltdcry-byte/classiklust/internal/api/middleware"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Engine *session.Engine
	Clock  clock.Clock

	// SpinInterval is the wheel cooldown per player; zero disables the
	// cooldown (useful in tests).
	SpinInterval time.Duration
	// SpinBurst is how many spins a player may bank before the cooldown
	// kicks in.
	SpinBurst int
}

// NewRouter creates a new API router with all routes configured. The
// returned stop func releases the rate limiter's background resources.
func NewRouter(cfg RouterConfig) (http.Handler, func()) {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Engine, cfg.Clock)
	vipHandler := handler.NewVipHandler(cfg.Engine, cfg.Clock)
	wheelHandler := handler.NewWheelHandler(cfg.Engine, cfg.Clock)
	achievementHandler := handler.NewAchievementHandler(cfg.Engine, cfg.Clock)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player economy routes
	players := api.PathPrefix("/players").Subrouter()
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}/login", playerHandler.Login).Methods(http.MethodPost)
	players.HandleFunc("/{id}/tap", playerHandler.Tap).Methods(http.MethodPost)

	// VIP routes
	players.HandleFunc("/{id}/vip", vipHandler.Status).Methods(http.MethodGet)
	players.HandleFunc("/{id}/vip", vipHandler.Purchase).Methods(http.MethodPost)

	// Wheel route with per-player cooldown
	stop := func() {}
	spin := http.Handler(http.HandlerFunc(wheelHandler.Spin))
	if cfg.SpinInterval > 0 {
		burst := cfg.SpinBurst
		if burst <= 0 {
			burst = 1
		}
		cooldown, stopLimiter := middleware.SpinCooldown(cfg.SpinInterval, burst)
		spin = cooldown(spin)
		stop = stopLimiter
	}
	players.Handle("/{id}/wheel/spin", spin).Methods(http.MethodPost)

	// Achievement routes
	players.HandleFunc("/{id}/achievements/{achievement_id}/progress", achievementHandler.Progress).Methods(http.MethodPost)
	players.HandleFunc("/{id}/achievements/{achievement_id}/claim", achievementHandler.Claim).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r, stop
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
