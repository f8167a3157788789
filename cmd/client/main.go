// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/client"
	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/tui"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:           "clipsync",
		Short:         "Clipboard sync client",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}
	flags = config.BindClientFlags(cmd.Flags())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *config.Flags) error {
	printBuildInfo()

	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("clipsync-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	board := clipboard.NewSystem()
	services := service.NewClientServices(cfg, storages, serverAdapter, adapter.NewWSDialer(cfg.Adapter, log), board, log)

	dashboard := tui.New(services, board, cfg.App.DeviceID, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.Workers, log)

	app, err := client.NewApp(cfg, services, storages, board, dashboard, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx, cfg.App.Mode)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
