package main

import (
	"context"
	"log"
	"os"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/app"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/bootstrap"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"

	"github.com/urfave/cli/v3"
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

	cmd := &cli.Command{
		Name:  "report",
		Usage: "Print quarterly hires and departments hiring above average",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "Hire year to report on",
				Value:   cfg.ReportYear,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print JSON instead of tables",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			year := cmd.Int("year")
			quarterly, above, err := app.Reports(ctx, cfg, year, logger)
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return writeJSON(os.Stdout, year, quarterly, above)
			}
			return writeTables(os.Stdout, year, quarterly, above)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("report failed", zap.Error(err))
	}
}
