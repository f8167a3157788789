// Package server runs the development server: the REST API listener and an
// optional dedicated WebSocket listener, stopped together on SIGINT, SIGTERM
// or SIGQUIT.
package server
