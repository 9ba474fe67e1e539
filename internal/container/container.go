package container

import (
	"github.com/fieldstock/inventory-backend/internal/api"
	"github.com/fieldstock/inventory-backend/internal/audit"
	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/database"
	"github.com/fieldstock/inventory-backend/internal/lifecycle"
	"github.com/fieldstock/inventory-backend/internal/logging"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	Config        *config.Config
	Database      *database.Database
	Recorder      *audit.QueueRecorder
	RedisClient   *redis.Client
	AuthService   *auth.AuthService
	Authenticator *auth.Authenticator
	Authorizer    *auth.Authorizer
	Engine        *lifecycle.Engine
	Server        *api.Server
	Worker        *audit.Worker
}

func New(cfg config.Config) (*Container, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	recorder, err := audit.NewQueueRecorder(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	// Two separate Redis connection pools are used: the asynq task
	// queue manages its own connection, and this client is used
	// for auth state (permission cache, refresh tokens).
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	jwtService, err := auth.NewJWTService([]byte(cfg.JWT.SigningKey), cfg.JWT.Issuer, cfg.JWT.Expiry)
	if err != nil {
		return nil, err
	}

	authService := auth.NewAuthService(redisClient, jwtService, db.Queries(), cfg.JWT)

	authenticator := auth.NewAuthenticator(jwtService, db.Queries(), authService.Store())
	authorizer := auth.NewAuthorizer()

	engine := lifecycle.NewEngine(lifecycle.NewDB(db), authorizer, recorder)

	worker := audit.NewWorker(&cfg.Redis, db.Queries())

	server := api.NewServer(db, engine, authService, authorizer)

	logging.Info("Connected to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port)

	return &Container{
		Config:        &cfg,
		Database:      db,
		Recorder:      recorder,
		RedisClient:   redisClient,
		AuthService:   authService,
		Authenticator: authenticator,
		Authorizer:    authorizer,
		Engine:        engine,
		Server:        server,
		Worker:        worker,
	}, nil
}

func (c *Container) Cleanup() {
	if c.Recorder != nil {
		c.Recorder.Close()
		logging.Info("Queue client closed")
	}
	if c.Worker != nil {
		c.Worker.Close()
		logging.Info("Worker closed")
	}
	if c.RedisClient != nil {
		c.RedisClient.Close()
		logging.Info("Redis client closed")
	}
	if c.Database != nil {
		c.Database.Close()
		logging.Info("Database connection closed")
	}
}
