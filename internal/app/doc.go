// Package app wires configuration, logging, telemetry, services and the HTTP
// router into a runnable application and manages its lifecycle.
//
// # Initialization Flow
//
//	1. Ensure the documents, input and output directories exist
//	2. Initialize OpenTelemetry tracing and the Prometheus-backed meter
//	3. Create the projection and health services
//	4. Set up middleware, handlers and the chi router
//	5. Configure the HTTP server
//
// # Usage
//
//	application, err := app.New(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	return application.Run()
//
// The CLI uses the same Application for one-shot projections and calls
// Shutdown to flush telemetry before exiting.
//
// # Graceful Shutdown
//
// Run handles SIGINT and SIGTERM: in-flight requests complete within
// Server.ShutdownTimeout and pending spans and metrics are flushed.
package app
