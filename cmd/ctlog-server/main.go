// Command ctlog-server wires the codec packages to storage, metrics and
// transport, exposing the segment checkpoints held in its store over
// HTTP, addressed by log ID and sequence number.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/ctlog/metrics"
	"github.com/forestrie/ctlog/storage"
	"github.com/forestrie/ctlog/transport"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		listenAddr  = flag.String("listen", ":8080", "address to serve the log API and /metrics on")
		logLevel    = flag.String("log-level", "INFO", "log level: NONE, PANIC, FATAL, ERROR, INFO, DEBUG")
		maxInFlight = flag.Int("max-in-flight", 32, "maximum concurrent outbound fetches")
	)
	flag.Parse()

	logger.New(*logLevel)
	log := logger.Sugar.WithServiceName("ctlog-server")

	store := storage.NewMemoryStore()
	reg := metrics.New()

	pool, err := transport.NewPool(*maxInFlight, 10*time.Second)
	if err != nil {
		return fmt.Errorf("ctlog-server: building transport pool: %w", err)
	}

	srv := newServer(store, reg, pool, log)

	httpServer := &http.Server{
		Addr:         *listenAddr,
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", *listenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return fmt.Errorf("ctlog-server: %w", err)
	case <-sigc:
		log.Infof("shutting down")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
