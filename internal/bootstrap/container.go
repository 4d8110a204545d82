package bootstrap

import (
	"time"

	"qrcapture-be/internal/config"
	"qrcapture-be/internal/controller"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/pkg/mailer"
	"qrcapture-be/internal/repository/memory"
	"qrcapture-be/internal/repository/unitofwork"
	"qrcapture-be/internal/service"
	"qrcapture-be/pkg/payment/paypal"
	"qrcapture-be/pkg/payment/stripegw"
	"qrcapture-be/pkg/upload"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	VenueController   controller.IVenueController
	LeadController    controller.ILeadController
	CaptureController controller.ICaptureController
	BillingController controller.IBillingController
	PaypalController  controller.IPaypalController
	HealthController  controller.IHealthController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisher := service.NewEventPublisher(pubSub, service.EventsTopic)

	// 3. Payment gateways
	stripegw.SetKey(cfg.Stripe.SecretKey)
	stripeGateway := stripegw.New()
	paypalClient := paypal.NewClient(cfg.PayPal.APIBase, cfg.PayPal.ClientID, cfg.PayPal.Secret)

	// 4. In-memory session storage
	sessionRepo := memory.NewSessionRepository(sessionTTL)

	// 5. Services
	sessionService := service.NewSessionService(uowFactory, sessionRepo)
	reconciliationService := service.NewReconciliationService(uowFactory, paypalClient, publisher, sysLogger)
	auditService := service.NewWebhookAuditService(uowFactory, sysLogger)
	billingService := service.NewBillingService(
		uowFactory,
		stripeGateway,
		cfg.Stripe.PriceID,
		cfg.App.BaseURL,
		cfg.Stripe.Enabled(),
	)
	venueService := service.NewVenueService(
		uowFactory,
		upload.MenuProfile(cfg.Upload.MaxMenuBytes),
		upload.LogoProfile(cfg.Upload.MaxLogoBytes),
		sysLogger,
	)
	leadService := service.NewLeadService(uowFactory, publisher, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		service.EventsTopic,
		uowFactory,
		emailService,
		cfg.App.BaseURL,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(sessionService),
		VenueController:   controller.NewVenueController(venueService, sessionService),
		LeadController:    controller.NewLeadController(leadService, sessionService),
		CaptureController: controller.NewCaptureController(venueService, leadService),
		BillingController: controller.NewBillingController(
			billingService,
			reconciliationService,
			auditService,
			stripeGateway,
			sessionService,
			cfg.Stripe.WebhookSecret,
			sysLogger,
		),
		PaypalController: controller.NewPaypalController(reconciliationService, auditService, sysLogger),
		HealthController: controller.NewHealthController(db),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
