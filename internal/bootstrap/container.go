package bootstrap

import (
	"context"
	"log"

	"pawhaven-be/internal/config"
	"pawhaven-be/internal/controller"
	"pawhaven-be/internal/handler"
	"pawhaven-be/internal/pkg/logger"
	"pawhaven-be/internal/pkg/mailer"
	"pawhaven-be/internal/repository/implementation"
	"pawhaven-be/internal/repository/memory"
	"pawhaven-be/internal/repository/unitofwork"
	"pawhaven-be/internal/service"
	"pawhaven-be/internal/websocket"

	pkgNats "pawhaven-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// mailTopic is the in-process queue topic for outbound email.
const mailTopic = "SEND_EMAIL"

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	OAuthController      controller.IOAuthController
	ProductController    controller.IProductController
	AdoptionController   controller.IAdoptionController
	UserController       controller.IUserController
	MessageController    controller.IMessageController
	PreferenceController controller.IPreferenceController
	GeneralController    controller.IGeneralController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Mail queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Content cache
	settingsCache := memory.NewSettingsCache()

	// 3. Services
	publisherService := service.NewPublisherService(mailTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, mailTopic, emailService)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	adoptionService := service.NewAdoptionService(uowFactory, notifService, publisherService, sysLogger)
	productService := service.NewProductService(uowFactory, sysLogger)
	favoriteService := service.NewFavoriteService(uowFactory)
	reviewService := service.NewReviewService(uowFactory)
	messageService := service.NewMessageService(uowFactory, notifService, sysLogger)
	preferenceService := service.NewPreferenceService(uowFactory)
	contentService := service.NewContentService(uowFactory, settingsCache, natsPub, publisherService, sysLogger)

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler:  notifHandler,
		WebSocketHub:         wsHub,
		AuthController:       controller.NewAuthController(authService),
		OAuthController:      controller.NewOAuthController(oauthService),
		ProductController:    controller.NewProductController(productService),
		AdoptionController:   controller.NewAdoptionController(adoptionService),
		UserController:       controller.NewUserController(adoptionService, favoriteService, reviewService),
		MessageController:    controller.NewMessageController(messageService),
		PreferenceController: controller.NewPreferenceController(preferenceService),
		GeneralController:    controller.NewGeneralController(contentService),

		ConsumerService: consumerService,
	}
}
