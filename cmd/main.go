package main

import (
	"context"
	"log"

	"salon-booking-service/config"
	"salon-booking-service/internal/module/booking/handler"
	"salon-booking-service/internal/module/booking/repositories"
	"salon-booking-service/internal/module/booking/usecases"
	"salon-booking-service/internal/pkg/database"
	"salon-booking-service/internal/pkg/http"
	"salon-booking-service/internal/pkg/httpclient"
	log_internal "salon-booking-service/internal/pkg/log"
	"salon-booking-service/internal/pkg/messagestream"
	"salon-booking-service/internal/pkg/middleware"
	redis_internal "salon-booking-service/internal/pkg/redis"
	"salon-booking-service/internal/pkg/scheduler"
	router "salon-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis_internal.SetupClient(&cfg.Redis)
	// init logger
	logger := log_internal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init distributed lock
	rs := redsync.New(goredis.NewPool(redisClient))

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create subscriber: " + err.Error())
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create publisher: " + err.Error())
	}

	// init task scheduler
	sched := scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)

	bookingRepo := repositories.New(
		db,
		logger,
		httpClient,
		redisClient,
		rs,
		asynqClient,
		&cfg.UserService,
		&cfg.SalonService,
		&cfg.ServiceOfferingService,
		&cfg.Reconciliation,
	)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher)
	m := middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	v := validator.New()
	bookingHandler := handler.BookingHandler{
		Log:       logger,
		Validator: v,
		Usecase:   bookingUsecase,
	}

	var messageRouters []*message.Router

	consumePaymentOutcomeRouter, err := messagestream.NewRouter(publisher, "payment_outcome_poisoned", "payment_outcome_handler", "payment_outcome", subscriber, bookingHandler.ConsumePaymentOutcome)
	if err != nil {
		logger.Ctx(ctx).Error("failed to create consume_payment_outcome router: " + err.Error())
	}

	messageRouters = append(messageRouters, consumePaymentOutcomeRouter)

	// reconciliation retries run on the task scheduler
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeReconcilePaymentOutcome},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.HandleReconciliationRetry},
	)
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &m)

	return r, messageRouters

}
