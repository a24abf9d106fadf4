package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/WorthlessAI/Procastinator/internal/config"
	"github.com/WorthlessAI/Procastinator/internal/events"
)

// App owns the long-lived resources: the optional Redis connection, the
// lifecycle-event publisher, and the HTTP router.
type App struct {
	cfg    config.Config
	redis  *redis.Client
	events events.Publisher
	router *gin.Engine
}

func New(cfg config.Config) (*App, error) {
	var pub events.Publisher = events.Nop{}
	if cfg.Kafka.Enabled() {
		pub = events.NewKafkaPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
	}
	return newApp(cfg, pub)
}

func newApp(cfg config.Config, pub events.Publisher) (*App, error) {
	a := &App{cfg: cfg, events: pub}

	if cfg.Redis.Enabled() {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
	}

	a.router = newRouter(cfg, a.redis, a.events)
	a.events.Publish("started")
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.events != nil {
		_ = a.events.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	return nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config, rdb *redis.Client, pub events.Publisher) *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	if len(cfg.App.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.App.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cookie"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.LoadHTMLGlob(cfg.App.TemplatesGlob)

	Setup(r, cfg, rdb, pub)
	return r
}

// requestID tags every request so log lines from one page load can be
// correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
