package provider

import (
	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/cache"
	"github.com/lacak-next/internal/config"
	"github.com/lacak-next/internal/document"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/models"
	"github.com/lacak-next/internal/queue"
	"github.com/lacak-next/internal/repository"
	"github.com/lacak-next/internal/service"
)

// Container wadah dependensi aplikasi
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ShipmentRepo  repository.ShipmentRepository
	StatusLogRepo repository.StatusLogRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	ShipmentService  *service.ShipmentService
	DashboardService *service.DashboardService
	ExportService    *service.ExportService

	// Generator surat jalan
	Generator *document.Generator
}

// NewContainer inisialisasi container
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ShipmentRepo = repository.NewShipmentRepository(db)
	c.StatusLogRepo = repository.NewStatusLogRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.Generator = document.NewGenerator(c.Config.Document.Width, c.Config.Tracking.BaseURL)
	c.AuthService = service.NewAuthService(c.Config)
	c.ShipmentService = service.NewShipmentService(c.ShipmentRepo, c.StatusLogRepo, c.AuthzService, c.QueueClient, c.Generator)
	c.DashboardService = service.NewDashboardService(c.ShipmentRepo, c.AuthzService)
	c.ExportService = service.NewExportService(c.ShipmentRepo, c.AuthzService)
}
