// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds a host:port pair. It implements pflag.Value.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to command-line flags. Flags left at their zero
// value do not override other configuration sources.
type Flags struct {
	httpAddress string
	wsAddress   string
	deviceID    string
	mode        string
	authKey     string
	authValue   string
	logLevel    string
	logFile     string
	dsn         string
	downloadDir string
	jsonPath    string

	requestTimeout time.Duration
	pollInterval   time.Duration
	maxTextLength  int

	serverAddress   NetAddress
	serverWSAddress NetAddress
	serverMaxItems  int
}

func (f *Flags) bindCommon(fs *pflag.FlagSet) {
	fs.StringVarP(&f.jsonPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "request timeout (e.g. 10s)")
	fs.StringVar(&f.authKey, "auth-key", "", "API key header name")
	fs.StringVar(&f.authValue, "auth-value", "", "API key header value")
}

// BindClientFlags registers the client flags on fs.
//
// Flags:
//
//	--base-url        REST base URL of the service
//	--ws-url          WebSocket URL of the service
//	--device-id       device id announced to the service
//	--mode            status | sync | test | monitor | dashboard
//	--auth-key        API key header name
//	--auth-value      API key header value
//	--history-db      history journal DSN (SQLite path or postgres:// URL)
//	--download-dir    directory for saved files
//	--log-level       log level
//	--log-file        log file path
//	--poll-interval   clipboard poll interval
//	--max-text-length longest pushed clipboard text
//	--request-timeout API request timeout
//	-c/--config       JSON config file path
func BindClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	f.bindCommon(fs)

	fs.StringVar(&f.httpAddress, "base-url", "", "REST base URL of the service (default "+DefaultHTTPAddress+")")
	fs.StringVar(&f.wsAddress, "ws-url", "", "WebSocket URL of the service (default "+DefaultWSAddress+")")
	fs.StringVar(&f.deviceID, "device-id", "", "device id announced to the service")
	fs.StringVarP(&f.mode, "mode", "m", "", "run mode: "+strings.Join(Modes, ", "))
	fs.StringVar(&f.dsn, "history-db", "", "history journal DSN (SQLite file or postgres:// URL)")
	fs.StringVar(&f.downloadDir, "download-dir", "", "directory for saved files")
	fs.StringVar(&f.logFile, "log-file", "", "log file path")
	fs.DurationVar(&f.pollInterval, "poll-interval", 0, "clipboard poll interval (e.g. 500ms)")
	fs.IntVar(&f.maxTextLength, "max-text-length", 0, "longest clipboard text pushed to the service")

	return f
}

// BindServerFlags registers the development server flags on fs.
//
// Flags:
//
//	-a/--address      REST listen address host:port
//	--ws-address      WebSocket listen address host:port
//	--max-items       capacity of the in-memory store
//	--auth-key        required API key header name
//	--auth-value      required API key header value
//	--log-level       log level
//	--request-timeout request timeout
//	-c/--config       JSON config file path
func BindServerFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	f.bindCommon(fs)

	fs.VarP(&f.serverAddress, "address", "a", "REST listen address host:port")
	fs.Var(&f.serverWSAddress, "ws-address", "WebSocket listen address host:port")
	fs.IntVar(&f.serverMaxItems, "max-items", 0, "capacity of the in-memory clipboard store")

	return f
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeviceID: f.deviceID,
			Mode:     f.mode,
			LogLevel: f.logLevel,
			LogFile:  f.logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    f.httpAddress,
			WSAddress:      f.wsAddress,
			AuthKey:        f.authKey,
			AuthValue:      f.authValue,
			RequestTimeout: f.requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: f.dsn},
			Files: Files{DownloadDir: f.downloadDir},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			WSAddress:      f.serverWSAddress.String(),
			RequestTimeout: f.requestTimeout,
			AuthKey:        f.authKey,
			AuthValue:      f.authValue,
			MaxItems:       f.serverMaxItems,
		},
		Workers: Workers{
			ClipboardPollInterval: f.pollInterval,
			MaxTextLength:         f.maxTextLength,
		},
		JSONFilePath: f.jsonPath,
	}
}

// String returns the host:port form, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
