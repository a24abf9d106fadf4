package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/WorthlessAI/Procastinator/internal/auth"
	"github.com/WorthlessAI/Procastinator/internal/config"
	"github.com/WorthlessAI/Procastinator/internal/events"
	"github.com/WorthlessAI/Procastinator/internal/handlers"
	"github.com/WorthlessAI/Procastinator/internal/llm"
	"github.com/WorthlessAI/Procastinator/internal/service"
	"github.com/WorthlessAI/Procastinator/internal/store"
)

// Setup registers all routes on the given engine. When rdb is nil, sessions
// and tasks live in process memory.
func Setup(r *gin.Engine, cfg config.Config, rdb *redis.Client, pub events.Publisher) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	var sessions auth.SessionStore
	var tasks store.TaskStore
	if rdb != nil {
		sessions = auth.NewRedisStore(rdb, cfg.Session.TTL.Duration())
		tasks = store.NewRedisStore(rdb)
	} else {
		sessions = auth.NewMemoryStore(cfg.Session.TTL.Duration())
		tasks = store.NewMemoryStore()
	}

	generator := llm.NewClient(llm.Options{
		Token:     cfg.LLM.Token,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		Timeout:   cfg.LLM.Timeout.Duration(),
		MaxTokens: cfg.LLM.MaxTokens,
	})
	assistant := llm.NewAssistant(generator, cfg.LLM.Concurrency, pub)

	taskSvc := service.NewTaskService(tasks, pub)

	authHandler := handlers.NewAuthHandler(sessions, pub, cfg.Session.TTL.Duration())
	taskHandler := handlers.NewTaskHandler(taskSvc, assistant)

	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	protected := r.Group("", auth.RequireSession(sessions))
	protected.GET("/", taskHandler.Home)
	protected.POST("/add_task", taskHandler.AddTask)
	protected.POST("/tasks/:id/complete", taskHandler.Complete)
	protected.POST("/tasks/:id/delete", taskHandler.Delete)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
