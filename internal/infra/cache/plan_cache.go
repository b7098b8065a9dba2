// Package cache implements the read-through plan catalog cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"strconv"
	"time"

	"refboard/config"
	"refboard/internal/domain/entity"
	"refboard/internal/domain/lifecycle"
	"refboard/internal/domain/service"
	"refboard/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	planCatalogKey        = "refboard:plans:catalog"
	defaultPlanCatalogTTL = 5 * time.Minute
)

// noopPlanCache is used when Redis is not configured. Every read is a miss.
type noopPlanCache struct{}

func (noopPlanCache) GetPlans(context.Context) ([]*entity.Plan, error) { return nil, nil }

func (noopPlanCache) SetPlans(context.Context, []*entity.Plan) error { return nil }

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewPlanCache creates a PlanCache based on configuration. Without a Redis
// section the cache degrades to a no-op and every read hits the database.
func NewPlanCache(params Params) service.PlanCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("Redis not configured, plan cache disabled")

		return noopPlanCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.PlanTTL
	if ttl <= 0 {
		ttl = defaultPlanCatalogTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisPlanCache{
		client: client,
		ttl:    ttl,
		logger: params.Logger,
	}
}

// GetPlans returns the cached catalog, or (nil, nil) on a miss.
func (c *redisPlanCache) GetPlans(ctx context.Context) ([]*entity.Plan, error) {
	payload, err := c.client.Get(ctx, planCatalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read plan catalog from Redis")
	}

	var plans []*entity.Plan
	if err := json.Unmarshal(payload, &plans); err != nil {
		// A corrupt entry is treated as a miss so the caller refills it.
		c.logger.Warn("Discarding unreadable plan catalog cache entry",
			slog.String("error", err.Error()),
		)

		return nil, nil
	}

	return plans, nil
}

// SetPlans stores the catalog until the TTL elapses.
func (c *redisPlanCache) SetPlans(ctx context.Context, plans []*entity.Plan) error {
	payload, err := json.Marshal(plans)
	if err != nil {
		return errors.Wrap(err, "failed to marshal plan catalog")
	}

	if err := c.client.Set(ctx, planCatalogKey, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write plan catalog to Redis")
	}

	return nil
}
