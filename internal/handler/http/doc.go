// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware of the file
// drop server. Cross-cutting concerns such as shared-secret authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer.
package http
