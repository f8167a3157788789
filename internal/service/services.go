// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
)

// Services groups the services of the development server.
type Services struct {
	AppInfoService     AppInfoService
	ItemService        ItemService
	MaintenanceService MaintenanceService
}

func NewServices(storages *store.ServerStorages, cfg config.Server, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:     appInfo,
		ItemService:        NewItemValidationService().Wrap(NewItemService(storages.Items, logger)),
		MaintenanceService: NewMaintenanceService(storages.Items, cfg, logger),
	}, nil
}
