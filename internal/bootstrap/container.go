package bootstrap

import (
	"log"

	"ai-humanizer-be/internal/config"
	"ai-humanizer-be/internal/controller"
	"ai-humanizer-be/internal/pkg/logger"
	"ai-humanizer-be/internal/repository/unitofwork"
	"ai-humanizer-be/internal/service"
	"ai-humanizer-be/pkg/admin/addon"
	"ai-humanizer-be/pkg/admin/dashboard"
	adminEvents "ai-humanizer-be/pkg/admin/events"
	"ai-humanizer-be/pkg/admin/plan"
	"ai-humanizer-be/pkg/admin/settings"
	"ai-humanizer-be/pkg/admin/user"
	pkgNats "ai-humanizer-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	AdminController controller.IAdminController
	Logger          logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires the application graph. The repository factory is
// injected so tests can swap the postgres backend for the in-memory one.
func NewContainer(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-process event bus for the audit pipeline
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional; the admin event publisher tolerates a nil
	// connection and degrades to audit-log-only persistence.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)

	publisherService := service.NewPublisherService(pubSub, cfg.App.AuditTopicName)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AuditTopicName,
		uowFactory,
		adminEventPublisher,
	)

	// Admin Domain Components
	planManager := plan.NewManager()
	addonManager := addon.NewManager()
	userManager := user.NewManager(sysLogger)
	settingsManager := settings.NewManager()
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	adminService := service.NewAdminService(
		uowFactory,
		planManager,
		addonManager,
		userManager,
		settingsManager,
		dashboardAggregator,
		publisherService,
		cfg.Admin.AuditLogLimit,
		sysLogger,
	)

	return &Container{
		AdminController: controller.NewAdminController(adminService),
		Logger:          sysLogger,
		ConsumerService: consumerService,
	}
}
