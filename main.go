package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jibrilosman/self-order-kiosk/configs"
	"github.com/jibrilosman/self-order-kiosk/controllers"
	"github.com/jibrilosman/self-order-kiosk/pkg/mq"
	"github.com/jibrilosman/self-order-kiosk/repository"
	"github.com/jibrilosman/self-order-kiosk/routes"
	"github.com/jibrilosman/self-order-kiosk/services"
	"github.com/jibrilosman/self-order-kiosk/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := configs.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("database handle")
	}
	defer sqlDB.Close()

	checks := map[string]controllers.Pinger{"db": sqlDB.PingContext}

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	// order numbers: redis when configured, otherwise a counter row
	var seq services.Sequencer = repository.NewSequenceRepository(db, repository.OrderNumberSequence)
	if cfg.RedisAddr != "" {
		rdb := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("connect redis")
		}
		seq = repository.NewRedisSequence(rdb, "kiosk:"+repository.OrderNumberSequence, orderRepo.MaxNumber)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.WithField("addr", cfg.RedisAddr).Info("order numbers from redis")
	}

	var publishers services.Publishers
	orders := services.NewOrderService(orderRepo, seq, nil, log)

	board := ws.NewOrderBoard(orders, log)
	go board.Run(ctx)
	publishers = append(publishers, board)

	if cfg.AMQPURL != "" {
		broker, err := mq.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.WithError(err).Fatal("connect rabbitmq")
		}
		defer broker.Close()
		publishers = append(publishers, services.BrokerPublisher{Broker: broker})
		checks["rabbitmq"] = func(context.Context) error { return broker.Ping() }
		log.WithField("exchange", cfg.AMQPExchange).Info("order events to rabbitmq")
	}
	orders.Events = publishers

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Log:      log,
		Orders:   orders,
		Products: services.NewProductService(productRepo),
		Auth:     services.NewAuthService(cfg.StaffPINHash, cfg.StaffJWTSecret, cfg.StaffTokenTTL),
		Board:    board.HandleWebSocket,
		Checks:   checks,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
}
