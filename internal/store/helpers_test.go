// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-clip-sync/internal/config"

func configWithDSN(dsn string) config.ClientStorage {
	return config.ClientStorage{DB: config.ClientDB{DSN: dsn, HistoryLimit: 100}}
}
