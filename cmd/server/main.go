// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/handler"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/server"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
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
		Use:           "clipsync-server",
		Short:         "Development server for the clipboard sync client",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}
	flags = config.BindServerFlags(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	printBuildInfo()

	log := logger.NewLogger("clipsync-server")
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.LogLevel != "" {
		if err = logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("ws_address", cfg.Server.WSAddress).
		Int("max_items", cfg.Server.MaxItems).
		Msg("received configs")

	storages := store.NewServerStorages(cfg.Server, log)

	services, err := service.NewServices(storages, cfg.Server, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
