package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	brief "github.com/goliatone/go-brief"
	"github.com/goliatone/go-brief/components/sendbrief"
	"github.com/goliatone/go-brief/pkg/notify"
)

func main() {
	var (
		addrFlag      = flag.String("addr", ":8383", "HTTP listen address")
		envFlag       = flag.String("env", ".env", "Optional dotenv file")
		maxBodyFlag   = flag.Int64("max-body", sendbrief.DefaultMaxBodyBytes, "Request body limit in bytes")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	if *envFlag != "" {
		if err := godotenv.Load(*envFlag); err != nil && !os.IsNotExist(err) {
			log.Fatalf("env: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	svc, err := brief.NewService(notify.WithLogger(logger))
	if err != nil {
		log.Fatalf("notify: %v", err)
	}

	router, err := newRouter(logger, svc, *maxBodyFlag)
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	httpServer := &http.Server{
		Addr:              *addrFlag,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", *addrFlag)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
