// Package http serves the clipboard sync REST API and the WebSocket hub of
// the development server.
//
// Routes live in routes.go. Middleware adds a trace id, access logging, the
// optional shared security key and gzip compression before requests reach
// the service layer. Every JSON answer uses the {success, message, data}
// envelope written by the utils package.
package http
