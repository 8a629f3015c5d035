package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budgetwise/api"
	"github.com/carson-networks/budgetwise/internal/config"
	"github.com/carson-networks/budgetwise/internal/logging"
	"github.com/carson-networks/budgetwise/internal/operator"
	"github.com/carson-networks/budgetwise/internal/service"
	"github.com/carson-networks/budgetwise/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("budget-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(operator.NewStorageTransactor(dbStorage), envConfig.Workers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage.Read().Accounts, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Service: svc,
		DB:      dbStorage.DB,
	}
	httpRest.Serve(ctx)
}
