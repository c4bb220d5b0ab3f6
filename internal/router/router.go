package router

import (
	"fmt"
	"strings"

	"github.com/lacak-next/internal/cache"
	"github.com/lacak-next/internal/config"
	"github.com/lacak-next/internal/constants"
	publichandlers "github.com/lacak-next/internal/http/handlers/public"
	staffhandlers "github.com/lacak-next/internal/http/handlers/staff"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter inisialisasi rute
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	staffHandler := staffhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "terlalu banyak percobaan login",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// Halaman lacak publik, tanpa autentikasi
		public := apiV1.Group("/public")
		{
			public.GET("/track", publicHandler.Track)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), staffHandler.Login)
		}

		// API staf, wajib JWT
		staff := apiV1.Group("/staff")
		staff.Use(StaffJWTAuthMiddleware(c.AuthService))
		{
			staff.POST("/shipments", staffHandler.CreateShipment)
			staff.GET("/shipments", staffHandler.ListShipments)
			staff.GET("/shipments/export", staffHandler.ExportShipments)
			staff.POST("/shipments/purge", staffHandler.PurgeShipments)
			staff.GET("/shipments/:order_id", staffHandler.GetShipment)
			staff.PATCH("/shipments/:order_id", staffHandler.UpdateShipment)
			staff.DELETE("/shipments/:order_id", staffHandler.DeleteShipment)
			staff.GET("/shipments/:order_id/note", staffHandler.ShipmentNote)
			staff.GET("/shipments/:order_id/qr", staffHandler.ShipmentQR)
			staff.GET("/shipments/:order_id/logs", staffHandler.ShipmentStatusLogs)

			staff.GET("/dashboard", staffHandler.Dashboard)
		}
	}

	// Cek kesehatan
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
