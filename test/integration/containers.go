package integration

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type Env struct {
	Redis  *tcredis.RedisContainer
	Client *goredis.Client
	Cancel context.CancelFunc
}

func Setup(ctx context.Context) (*Env, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	redisC, err := tcredis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	if err != nil {
		cancel()
		return nil, err
	}

	connStr, err := redisC.ConnectionString(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	opts, err := goredis.ParseURL(connStr)
	if err != nil {
		cancel()
		return nil, err
	}

	return &Env{
		Redis:  redisC,
		Client: goredis.NewClient(opts),
		Cancel: cancel,
	}, nil
}

func (e *Env) Teardown(ctx context.Context) {
	_ = e.Client.Close()
	_ = e.Redis.Terminate(ctx)
	e.Cancel()
}
