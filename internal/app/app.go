package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Pedroxsbai/TODOAPP/internal/config"
	"github.com/Pedroxsbai/TODOAPP/internal/pipeline"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
	"github.com/Pedroxsbai/TODOAPP/internal/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg      config.Config
	redis    *redis.Client
	sessions *session.Store
	router   *gin.Engine
}

func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	order, err := pipeline.ParseOrder(cfg.Pipeline.Order)
	if err != nil {
		return nil, fmt.Errorf("PIPELINE_ORDER: %w", err)
	}

	backend, err := a.newSessionBackend()
	if err != nil {
		return nil, err
	}
	a.sessions = session.NewStore(backend)

	router, err := newRouter(cfg, a.sessions, order)
	if err != nil {
		_ = a.Close(context.Background())
		return nil, err
	}
	a.router = router
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func (a *App) newSessionBackend() (session.Backend, error) {
	idle := a.cfg.Session.IdleTimeout.Duration()
	if a.cfg.Session.Backend == config.SessionBackendMemory {
		log.Printf("sessions kept in memory; they are lost on restart")
		return session.NewMemoryBackend(idle), nil
	}

	rdb, err := newRedis(a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.redis = rdb
	return session.NewRedisBackend(rdb, a.cfg.Redis.KeyPrefix, idle), nil
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

func newRouter(cfg config.Config, sessions *session.Store, order pipeline.Order) (*gin.Engine, error) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	Setup(r, cfg, sessions, order)
	return r, nil
}
