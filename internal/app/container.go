package app

import (
	"context"

	"jobboard/internal/cms"
	"jobboard/internal/config"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/session"
)

// Container holds the long-lived dependencies: logger, Redis, the session
// manager and the gateway client bound to it.
type Container struct {
	Config   config.Config
	Logger   *logging.Logger
	Cache    *cache.Redis
	Sessions *session.Manager
	Client   *cms.Client
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := logging.New(cfg.App.LogLevel)

	redisCache := cache.NewRedis(cfg.Redis, logger)

	var store session.Store
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("falling back to in-memory sessions", "err", err)
		store = session.NewMemoryStore(cfg.Session.TTL)
	} else {
		store = session.NewRedisStore(redisCache, cfg.Session.TTL)
	}

	sessions := session.NewManager(store, logger)
	client := cms.NewClient(cfg.CMS, sessions, logger)
	sessions.Bind(client)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Cache:    redisCache,
		Sessions: sessions,
		Client:   client,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.Cache != nil {
		return c.Cache.Close()
	}
	return nil
}
