package config

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"paju/middleware"
	"paju/repository"
	"paju/services"
	"paju/services/logger"
	"paju/services/notification"
	"paju/storage"
	"paju/validator"
)

// App gom các thành phần đã khởi tạo, dùng chung cho routes, jobs và CLI
type App struct {
	Config *Config
	Logger *logger.ZeroLogger

	Store        *repository.Store
	Redis        *redis.Client
	Images       storage.ImageStorage
	LocalUploads *storage.LocalStorage
	Melody       *melody.Melody
	Cron         *cron.Cron
	Registry     *prometheus.Registry
	Metrics      *middleware.Metrics
	LoginLimiter *middleware.IPRateLimiter

	Menu          *services.MenuService
	Hours         *services.HoursService
	Announcements *services.AnnouncementService
	Users         *services.UserService
	Auth          *services.AuthService
	Uploads       *services.UploadService
	Seeder        *services.Seeder
}

// NewLogger tạo logger theo config: console ở development, JSON ở production
func NewLogger(cfg *Config) (*logger.ZeroLogger, error) {
	return logger.New(logger.Options{
		Level:   logger.ParseLevel(cfg.Log.Level),
		Console: !cfg.IsProduction(),
		Dir:     cfg.Log.Dir,
	})
}

func InitApp(ctx context.Context, cfg *Config, log *logger.ZeroLogger) (*App, error) {
	if err := validator.RegisterBindings(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	app := &App{Config: cfg, Logger: log}

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store
	log.Info("store backend: %s", store.Backend)

	var cache services.Cache = services.NoopCache{}
	rdb, err := ConnectRedis(ctx, cfg)
	if err != nil {
		// chạy tiếp không cache
		log.Error("redis unavailable, cache disabled: %v", err)
	} else if rdb != nil {
		app.Redis = rdb
		cache = services.NewRedisCache(rdb)
		log.Info("redis cache at %s", cfg.Redis.Addr)
	}

	images, local, err := NewImageStorage(cfg)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Images, app.LocalUploads = images, local
	log.Info("image storage: %s", images.Name())

	app.Melody = melody.New()
	app.Cron = cron.New()
	app.LoginLimiter = middleware.NewIPRateLimiter(cfg.Auth.LoginEvery, cfg.Auth.LoginBurst)
	if cfg.Metrics.Enabled {
		app.Registry = prometheus.NewRegistry()
		app.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		app.Metrics = middleware.NewMetrics(app.Registry)
	}

	deps := services.Deps{
		Store:    store,
		Cache:    cache,
		Notifier: notification.NewMelodyService(app.Melody),
		Logger:   log,
		CacheTTL: cfg.Redis.CacheTTL,
	}
	app.Menu = services.NewMenuService(deps, images)
	app.Hours = services.NewHoursService(deps)
	app.Announcements = services.NewAnnouncementService(deps)
	app.Users = services.NewUserService(services.UserServiceOptions{Users: store.Users, Logger: log})
	app.Auth = services.NewAuthService(services.AuthServiceOptions{
		Users:  store.Users,
		Tokens: services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Logger: log,
	})
	app.Uploads = services.NewUploadService(images, log)
	app.Seeder = services.NewSeeder(store, log, services.SeedOptions{
		AdminPassword:  cfg.Auth.AdminPass,
		EditorPassword: cfg.Auth.EditorPass,
	})
	return app, nil
}

// UploadSource là thư mục uploads local, nguồn ảnh cho migrate-uploads
func (a *App) UploadSource() (*storage.LocalStorage, error) {
	if a.LocalUploads != nil {
		return a.LocalUploads, nil
	}
	return storage.NewLocalStorage(a.Config.Storage.UploadDir, a.Config.Storage.URLPrefix)
}

// CachePing dùng cho health check
func (a *App) CachePing(ctx context.Context) error {
	if a.Redis == nil {
		return nil
	}
	return a.Redis.Ping(ctx).Err()
}

// Router tạo gin engine với các middleware chung
func (a *App) Router() *gin.Engine {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(a.Logger.Zerolog()))
	if a.Metrics != nil {
		router.Use(a.Metrics.Handler())
	}
	router.Use(middleware.ErrorHandler())

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	if len(a.Config.CORS.AllowedOrigins) > 0 {
		configCors.AllowOrigins = a.Config.CORS.AllowedOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	_ = router.SetTrustedProxies(nil)
	return router
}

func (a *App) Close() error {
	if a.Cron != nil {
		<-a.Cron.Stop().Done()
	}
	if a.Melody != nil {
		_ = a.Melody.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.Store != nil && a.Store.Close != nil {
		return a.Store.Close()
	}
	return nil
}
