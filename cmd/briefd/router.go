package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-brief/components/sendbrief"
	"github.com/goliatone/go-brief/pkg/apispec"
)

func newRouter(logger *slog.Logger, notifier sendbrief.Notifier, maxBody int64) (*chi.Mux, error) {
	contract, err := apispec.Default()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(apispec.Raw())
	})

	brief := sendbrief.New(
		sendbrief.WithNotifier(notifier),
		sendbrief.WithContract(contract),
		sendbrief.WithLogger(logger),
		sendbrief.WithMaxBodyBytes(maxBody),
	)
	if _, err := brief.RegisterRoutes(r, "/"); err != nil {
		return nil, err
	}
	return r, nil
}
