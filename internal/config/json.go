// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
//
// Timeouts may be given as duration strings ("10s") or as numbers of seconds,
// so files written for the original network configuration keep working.
type StructuredJSONConfig struct {
	App struct {
		DeviceID string `json:"device_id"`
		Mode     string `json:"mode"`
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress string            `json:"http_address"`
		WSAddress   string            `json:"ws_address"`
		AuthKey     string            `json:"auth_key"`
		AuthValue   string            `json:"auth_value"`
		Headers     map[string]string `json:"headers"`
		Timeouts    struct {
			HealthCheck           Duration `json:"health_check"`
			APIRequest            Duration `json:"api_request"`
			FileOperation         Duration `json:"file_operation"`
			Cleanup               Duration `json:"cleanup"`
			WebsocketConnect      Duration `json:"websocket_connect"`
			WebsocketPing         Duration `json:"websocket_ping"`
			WebsocketPingInterval Duration `json:"websocket_ping_interval"`
		} `json:"timeouts"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			HistoryLimit int    `json:"history_limit"`
		} `json:"db,omitempty"`

		Files struct {
			DownloadDir string `json:"download_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		WSAddress      string   `json:"ws_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthKey        string   `json:"auth_key"`
		AuthValue      string   `json:"auth_value"`
		MaxItems       int      `json:"max_items"`
	} `json:"server,omitempty"`

	Workers struct {
		ClipboardPollInterval Duration `json:"clipboard_poll_interval"`
		MaxTextLength         int      `json:"max_text_length"`
		PushRate              float64  `json:"push_rate"`
		PushBurst             int      `json:"push_burst"`
		StatsInterval         Duration `json:"stats_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	timeouts := jsonCfg.Adapter.Timeouts
	cfg := &StructuredConfig{
		App: App{
			DeviceID: jsonCfg.App.DeviceID,
			Mode:     jsonCfg.App.Mode,
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			WSAddress:        jsonCfg.Adapter.WSAddress,
			AuthKey:          jsonCfg.Adapter.AuthKey,
			AuthValue:        jsonCfg.Adapter.AuthValue,
			Headers:          jsonCfg.Adapter.Headers,
			RequestTimeout:   time.Duration(timeouts.APIRequest),
			HealthTimeout:    time.Duration(timeouts.HealthCheck),
			FileTimeout:      time.Duration(timeouts.FileOperation),
			CleanupTimeout:   time.Duration(timeouts.Cleanup),
			WSConnectTimeout: time.Duration(timeouts.WebsocketConnect),
			PingInterval:     time.Duration(timeouts.WebsocketPingInterval),
			PongTimeout:      time.Duration(timeouts.WebsocketPing),
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				HistoryLimit: jsonCfg.Storage.DB.HistoryLimit,
			},
			Files: Files{
				DownloadDir: jsonCfg.Storage.Files.DownloadDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			WSAddress:      jsonCfg.Server.WSAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AuthKey:        jsonCfg.Server.AuthKey,
			AuthValue:      jsonCfg.Server.AuthValue,
			MaxItems:       jsonCfg.Server.MaxItems,
		},
		Workers: Workers{
			ClipboardPollInterval: time.Duration(jsonCfg.Workers.ClipboardPollInterval),
			MaxTextLength:         jsonCfg.Workers.MaxTextLength,
			PushRate:              jsonCfg.Workers.PushRate,
			PushBurst:             jsonCfg.Workers.PushBurst,
			StatsInterval:         time.Duration(jsonCfg.Workers.StatsInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from a duration string ("1m30s")
// or from a JSON number of seconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value * float64(time.Second)))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
