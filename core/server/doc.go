// Package server wraps http.Server with graceful shutdown, env-driven
// configuration, and functional options for timeouts and TLS.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Run(ctx, mux); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until the context is canceled, then drains in-flight requests
// for the configured shutdown timeout.
package server
