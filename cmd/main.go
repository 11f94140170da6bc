package main

import (
	"context"
	"log"
	"time"

	"tourism-service/config"
	authHandler "tourism-service/internal/module/auth/handler"
	authRepo "tourism-service/internal/module/auth/repositories"
	authUsecase "tourism-service/internal/module/auth/usecases"
	bookingHandler "tourism-service/internal/module/booking/handler"
	bookingRepo "tourism-service/internal/module/booking/repositories"
	bookingUsecase "tourism-service/internal/module/booking/usecases"
	contactHandler "tourism-service/internal/module/contact/handler"
	contactRepo "tourism-service/internal/module/contact/repositories"
	contactUsecase "tourism-service/internal/module/contact/usecases"
	hotelHandler "tourism-service/internal/module/hotel/handler"
	hotelRepo "tourism-service/internal/module/hotel/repositories"
	hotelUsecase "tourism-service/internal/module/hotel/usecases"
	packageHandler "tourism-service/internal/module/packages/handler"
	packageRepo "tourism-service/internal/module/packages/repositories"
	packageUsecase "tourism-service/internal/module/packages/usecases"
	"tourism-service/internal/pkg/database"
	"tourism-service/internal/pkg/http"
	"tourism-service/internal/pkg/httpclient"
	"tourism-service/internal/pkg/idgen"
	"tourism-service/internal/pkg/lock"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/messagestream"
	"tourism-service/internal/pkg/middleware"
	"tourism-service/internal/pkg/ratelimit"
	"tourism-service/internal/pkg/redis"
	"tourism-service/internal/pkg/scheduler"
	"tourism-service/internal/pkg/token"
	router "tourism-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const lockExpiry = 10 * time.Second

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sch, tasks := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// scheduled tasks
	go sch.StartPeriodic(&cfg.Redis, cfg.Scheduler.CompleteSchedulesCron, scheduler.TypeCompleteElapsedSchedules)
	go sch.StartHandler(&cfg.Redis, []string{scheduler.TypeCompleteElapsedSchedules}, tasks)
	go sch.StartMonitoring(&cfg.Redis)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, []scheduler.HandlerFunc) {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	handlerLog := log_internal.Setup()

	ctx := context.Background()

	// init database
	db := database.GetConnection(&cfg.Database)
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("error migrate database: %v", err)
		}
	}
	// init redis
	redis := redis.SetupClient(&cfg.Redis)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	ids := idgen.New(&cfg.IDGen, idgen.NewRedisReserver(redis))
	locker := lock.NewRedsync(redis, lockExpiry)
	tokens := token.NewManager(&cfg.Jwt)
	validator := validator.New()

	authUC := authUsecase.New(authRepo.New(db, logger, &cfg.Google), logger, tokens, ids)
	hotelUC := hotelUsecase.New(hotelRepo.New(db, logger), logger, ids, locker)
	packageUC := packageUsecase.New(packageRepo.New(db, logger), logger, ids, locker)
	bookingUC := bookingUsecase.New(bookingRepo.New(db, logger), logger)
	contactUC := contactUsecase.New(contactRepo.New(logger, httpClient, &cfg.Contact), logger, &cfg.Contact)

	handlers := router.Handlers{
		Auth: &authHandler.AuthHandler{
			Log:         handlerLog,
			Validator:   validator,
			Usecase:     authUC,
			FrontendURL: cfg.Google.FrontendURL,
		},
		Hotel: &hotelHandler.HotelHandler{
			Log:       handlerLog,
			Validator: validator,
			Usecase:   hotelUC,
		},
		Package: &packageHandler.PackageHandler{
			Log:       handlerLog,
			Validator: validator,
			Usecase:   packageUC,
		},
		Booking: &bookingHandler.BookingHandler{
			Log:       handlerLog,
			Validator: validator,
			Usecase:   bookingUC,
			Publish:   publisher,
		},
		Contact: &contactHandler.ContactHandler{
			Log:       handlerLog,
			Validator: validator,
			Usecase:   contactUC,
			Publish:   publisher,
		},
	}

	middleware := middleware.Middleware{
		Log:       handlerLog,
		Validator: authUC,
	}

	var messageRouters []*message.Router

	consumeContactRouter, err := amqp.NewRouter(publisher, messagestream.TopicContactPoisoned, "contact_message_handler", messagestream.TopicContactMessage, subscriber, handlers.Contact.ConsumeContactMessage)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_contact_message router", err)
	} else {
		messageRouters = append(messageRouters, consumeContactRouter)
	}

	sch := &scheduler.Scheduler{
		Log: logger,
		Cfg: &cfg.Scheduler,
	}
	tasks := []scheduler.HandlerFunc{handlers.Package.CompleteElapsedSchedules}

	limiter := ratelimit.NewRateLimiter(cfg.HttpServer.AuthRate, cfg.HttpServer.AuthBurst)

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)

	r := router.Initialize(serverHttp, handlers, &middleware, limiter)

	return r, messageRouters, sch, tasks

}
