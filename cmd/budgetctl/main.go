package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budgetwise/internal/client"
	"github.com/carson-networks/budgetwise/internal/config"
	"github.com/carson-networks/budgetwise/internal/logging"
	"github.com/carson-networks/budgetwise/internal/settings"
	"github.com/carson-networks/budgetwise/internal/tui"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(envConfig).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(envConfig *config.Config) *cli.App {
	return &cli.App{
		Name:  "budgetctl",
		Usage: "manage budget accounts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "budget server base URL",
				Value:   envConfig.ServerURL,
				EnvVars: []string{"BUDGET_SERVER_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout",
				Value: 30 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log requests and failures to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "accounts",
				Usage:  "print every account, newest first",
				Action: listAccounts,
			},
			{
				Name:   "settings",
				Usage:  "add and delete accounts interactively",
				Action: editSettings,
			},
		},
	}
}

func newLogger(cCtx *cli.Context) *logrus.Logger {
	level := "warn"
	if cCtx.Bool("verbose") {
		level = "debug"
	}
	return logging.NewLogger(os.Stderr, level)
}

func newClient(cCtx *cli.Context) *client.Client {
	return client.New(cCtx.String("server"), client.WithClientTimeout(cCtx.Duration("timeout")))
}

func listAccounts(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	view := settings.NewListView(newClient(cCtx))

	if err := view.Load(cCtx.Context); err != nil {
		logger.WithError(err).Debug("ListView.Load")
	}

	fmt.Fprintln(cCtx.App.Writer, tui.NewRenderer().RenderList(view.State()))
	if view.State().Phase == settings.PhaseFailed {
		return cli.Exit("", 1)
	}
	return nil
}

func editSettings(cCtx *cli.Context) error {
	logger := newLogger(cCtx)
	controller := settings.NewController(newClient(cCtx))

	return tui.NewSettings(controller, cCtx.App.Writer, logger).Run(cCtx.Context)
}
