package main

import (
	"context"
	"log"
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/delivery/http/middlewares"
	"mediflow-service/internal/app/delivery/http/routers"
	"mediflow-service/internal/app/drivers/database"
	"mediflow-service/internal/app/drivers/logger"
	"mediflow-service/internal/app/drivers/messaging"
	minioDriver "mediflow-service/internal/app/drivers/storage"
	"mediflow-service/internal/app/services/core/labs"
	"mediflow-service/internal/app/services/core/patients"
	syncService "mediflow-service/internal/app/services/core/sync"
	"mediflow-service/internal/app/services/core/walkins"
	"mediflow-service/internal/app/services/core/xrays"
	"mediflow-service/internal/app/services/shared/cache"
	"mediflow-service/internal/app/services/shared/storage"
	"mediflow-service/internal/app/services/shared/syncqueue"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("error during dependency shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared infrastructure
	cacheRepository := cache.NewRedisRepository(bootstrap.Redis)
	assetStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig, bootstrap.InternalConfig)

	syncQueue, err := syncqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up ledger sync queue", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Ledger synchronizer and retry worker
	synchronizer := syncService.NewLedgerSynchronizer(bootstrap.Logger, patientMongoRepository, syncQueue)
	worker := syncService.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, syncQueue, synchronizer)
	stopWorker, err := worker.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Fatal("failed to start ledger sync worker", zap.Error(err))
	}
	bootstrap.SyncWorkerStop = stopWorker

	// Lab records
	labMongoRepository := labs.NewLabMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	labUsecase := labs.NewLabUsecase(labMongoRepository, synchronizer)
	labController := labs.NewLabController(bootstrap.Logger, labUsecase)

	// Walk-in X-ray records
	walkInMongoRepository := walkins.NewWalkInMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	walkInUsecase := walkins.NewWalkInUsecase(bootstrap.Logger, walkInMongoRepository, assetStorage, cacheRepository)
	walkInController := walkins.NewWalkInController(bootstrap.Logger, walkInUsecase)

	// X-ray records and statistics
	xrayMongoRepository := xrays.NewXrayMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	xrayUsecase := xrays.NewXrayUsecase(bootstrap.Logger, xrayMongoRepository, assetStorage, synchronizer, cacheRepository)
	statisticsUsecase := xrays.NewStatisticsUsecase(
		bootstrap.Logger,
		xrayMongoRepository,
		walkInMongoRepository,
		cacheRepository,
		time.Second*time.Duration(bootstrap.InternalConfig.Cache.StatisticsTTLInSeconds),
	)
	xrayController := xrays.NewXrayController(bootstrap.Logger, xrayUsecase, statisticsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		labController,
		xrayController,
		walkInController,
		patientController,
	)
}
