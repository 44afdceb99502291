package main

import (
	"log"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/app"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/bootstrap"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	apperror.Init()

	if err := app.RunWorker(cfg, logger); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
