// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/handler"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

type server struct {
	rest    *httpServer
	ws      *httpServer
	closers []func()
	logger  *logger.Logger
}

// NewServer builds the REST listener and, when cfg.WSAddress differs from
// cfg.HTTPAddress, a second listener dedicated to the WebSocket endpoint.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoListeners
	}

	s := &server{
		closers: []func(){handlers.HTTP.Close},
		logger:  logger,
	}
	if cfg.HTTPAddress != "" {
		s.rest = newHTTPServer("rest", handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger)
	}
	if cfg.WSAddress != "" && cfg.WSAddress != cfg.HTTPAddress {
		s.ws = newHTTPServer("websocket", handlers.HTTP.InitWS(), cfg.WSAddress, cfg.RequestTimeout, logger)
	}

	if s.rest == nil && s.ws == nil {
		return nil, errNoListeners
	}

	logger.Info().Str("rest", cfg.HTTPAddress).Str("ws", cfg.WSAddress).Msg("server created")
	return s, nil
}

// RunServer serves until SIGINT, SIGTERM or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
	}
}

// Run serves until ctx is done or a listener fails, then shuts every
// listener down.
func (s *server) Run(ctx context.Context) error {
	listeners := s.listeners()
	for _, l := range listeners {
		if err := l.listen(); err != nil {
			s.Shutdown()
			return err
		}
	}

	errc := make(chan error, len(listeners))
	for _, l := range listeners {
		go func() { errc <- l.serve() }()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errc:
	}

	s.Shutdown()
	s.logger.Info().Msg("server shut down gracefully")
	return err
}

// Shutdown closes WebSocket connections first: hijacked connections are not
// tracked by http.Server.Shutdown.
func (s *server) Shutdown() {
	for _, closeFn := range s.closers {
		closeFn()
	}
	for _, l := range s.listeners() {
		l.shutdown()
	}
}

func (s *server) listeners() []*httpServer {
	var out []*httpServer
	if s.rest != nil {
		out = append(out, s.rest)
	}
	if s.ws != nil {
		out = append(out, s.ws)
	}
	return out
}

// Addrs returns the bound addresses, REST first.
func (s *server) Addrs() []string {
	var out []string
	for _, l := range s.listeners() {
		out = append(out, l.Addr())
	}
	return out
}
