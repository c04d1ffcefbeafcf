package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/random"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
	"github.com/shadyltdcry-byte/classiklust/internal/services/wheel"
	"github.com/shadyltdcry-byte/classiklust/internal/storage"
	"github.com/shadyltdcry-byte/classiklust/internal/storage/memory"
	redisstorage "github.com/shadyltdcry-byte/classiklust/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.PlayerStore

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Static game tables
	GameConfig *config.GameConfig

	// Services
	Wheel  *wheel.Selector
	Engine *session.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// GameConfig holds the static game tables (optional)
	// If nil, config.Default() is used.
	GameConfig *config.GameConfig
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used.
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory".
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired. The wheel
// table is validated here, so a malformed configuration fails startup
// rather than the first spin.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	gameCfg := cfg.GameConfig
	if gameCfg == nil {
		gameCfg = config.Default()
	}
	if err := gameCfg.Validate(); err != nil {
		return nil, err
	}

	// Create storage based on type
	var store storage.PlayerStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, gameCfg, clock.New(), random.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.PlayerStore,
	gameCfg *config.GameConfig,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) (*App, error) {
	selector, err := wheel.New(gameCfg.Wheel)
	if err != nil {
		return nil, err
	}

	engine := session.NewEngine(store, gameCfg, selector, clk, rnd, logger)

	return &App{
		Store:      store,
		Clock:      clk,
		Random:     rnd,
		GameConfig: gameCfg,
		Wheel:      selector,
		Engine:     engine,
	}, nil
}
