package bootstrap

import (
	"context"
	"log"

	"talentflow-be/internal/config"
	"talentflow-be/internal/controller"
	"talentflow-be/internal/handler"
	"talentflow-be/internal/pkg/logger"
	"talentflow-be/internal/pkg/mailer"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/internal/service"
	"talentflow-be/internal/websocket"
	"talentflow-be/pkg/matching/filterstate"

	pktNats "talentflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	FreelancerController controller.IFreelancerController
	MatchController      controller.IMatchController
	QuizController       controller.IQuizController
	DocumentController   controller.IDocumentController
	PaymentController    controller.IPaymentController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	BoardHandler *handler.BoardHandler
	WebSocketHub *websocket.Hub
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

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisAvailable := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisAvailable = false
	}

	// Saved board filters live in Redis so they follow the operator across
	// instances; without Redis they degrade to per-process state.
	var filterStore filterstate.Store
	if redisAvailable {
		filterStore = filterstate.NewRedisStore(rdb, sysLogger)
	} else {
		filterStore = filterstate.NewMemoryStore()
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/board.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.LifecycleTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.LifecycleTopic,
		uowFactory,
		emailService,
		natsPub,
		wsHub,
	)

	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	freelancerService := service.NewFreelancerService(uowFactory, publisherService)
	matchService := service.NewMatchService(uowFactory, filterStore, nil)
	quizService := service.NewQuizService(uowFactory, publisherService)
	documentService := service.NewDocumentService(uowFactory, publisherService)
	paymentService := service.NewPaymentService(uowFactory, publisherService)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		FreelancerController: controller.NewFreelancerController(freelancerService),
		MatchController:      controller.NewMatchController(matchService),
		QuizController:       controller.NewQuizController(quizService),
		DocumentController:   controller.NewDocumentController(documentService),
		PaymentController:    controller.NewPaymentController(paymentService),

		ConsumerService: consumerService,

		BoardHandler: handler.NewBoardHandler(wsHub, wsLogger),
		WebSocketHub: wsHub,
	}
}
