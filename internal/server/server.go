package server

import (
	"backend-lumashare/internal/auth"
	"backend-lumashare/internal/config"
	"backend-lumashare/internal/gallery"
	"backend-lumashare/internal/notification"
	"backend-lumashare/internal/profile"
	"backend-lumashare/internal/social"
	"backend-lumashare/internal/storage"
	"backend-lumashare/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	optionalJWT := auth.OptionalJWTMiddleware(s.Cfg.JWTSecret)

	notifications := notification.NewService(s.DB, s.Stream)

	gallerySvc := gallery.NewService(s.DB)
	gallerySvc.SetDefaultPageSize(s.Cfg.GalleryPageSize)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	gallery.RegisterRoutes(s.App.Group("/gallery"), gallerySvc, jwtMiddleware, optionalJWT)
	social.RegisterRoutes(s.App.Group("/social"), social.NewService(s.DB, notifications), jwtMiddleware)
	notification.RegisterRoutes(s.App.Group("/notifications"), notifications, jwtMiddleware)
	profile.RegisterRoutes(s.App.Group("/profiles"), profile.NewService(s.DB), jwtMiddleware)
	storage.RegisterRoutes(s.App.Group("/storage"), storage.NewService(s.DB, s.Cfg.StorageBaseURL), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream, jwtMiddleware)
}
