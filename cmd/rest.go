package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	coreconfig "github.com/AzielCF/az-access/core/config"
	uiRest "github.com/AzielCF/az-access/ui/rest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the content-security API over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	cfg := coreconfig.Global

	container, err := newAppContainer(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("[APP] Failed to initialize: %v", err)
	}

	app := uiRest.NewServer(cfg, container.handler, container.checks...)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
	}()

	logrus.Infof("[REST] Listening on :%s%s", cfg.App.Port, cfg.App.BasePath)
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		container.Close()
		logrus.Fatalln("Failed to start: ", err.Error())
	}

	container.Close()
	logrus.Info("[APP] Application stopped cleanly.")
	closeLogFile()
}
