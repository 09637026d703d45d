package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/tTrmc/library-service/library/config"
	"github.com/tTrmc/library-service/library/internal/handler"
	"github.com/tTrmc/library-service/library/internal/payment"
	"github.com/tTrmc/library-service/library/internal/repository"
	"github.com/tTrmc/library-service/library/internal/server"
	"github.com/tTrmc/library-service/library/internal/service"
	"github.com/tTrmc/library-service/library/migrations"
	"github.com/tTrmc/library-service/pkg/kafka"
	"github.com/tTrmc/library-service/pkg/logger"
	"github.com/tTrmc/library-service/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
	}

	gateway := payment.NewSimulatedGateway()
	svc := service.NewService(repo, gateway, producer, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
