package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "mortgage-pulse/http"
	"mortgage-pulse/repository"
	"mortgage-pulse/service"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	store, err := repository.NewSQLiteStore(envOr("SQLITE_PATH", "mortgage-pulse.db"))
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	defer store.Close()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr, 0)
	} else {
		cache = repository.NewMockCache()
	}

	policyService := service.NewPolicyService(cache)
	scenarioService := service.NewScenarioService(policyService)
	submissionService := service.NewSubmissionService(scenarioService, store.Submissions())
	eventService := service.NewEventService(store.Events())
	analyticsService := service.NewAnalyticsService(store.Submissions(), store.Events())

	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService)
	submissionHandler := httpLayer.NewSubmissionHandler(submissionService)
	eventHandler := httpLayer.NewEventHandler(eventService)
	adminHandler := httpLayer.NewAdminHandler(analyticsService, policyService)

	// The wizard recalculates on every slider change, so the public limit is
	// generous; telemetry is chattier still.
	calcLimiter := httpLayer.NewRateLimiter(60, time.Minute)
	defer calcLimiter.Stop()
	eventLimiter := httpLayer.NewRateLimiter(240, time.Minute)
	defer eventLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/refinance/scenarios",
		calcLimiter.Middleware(http.HandlerFunc(scenarioHandler.CalculateScenarios)),
	)
	mux.Handle(
		"/leads",
		calcLimiter.Middleware(http.HandlerFunc(submissionHandler.SubmitLead)),
	)
	mux.Handle(
		"/events",
		eventLimiter.Middleware(http.HandlerFunc(eventHandler.RecordEvent)),
	)

	mux.HandleFunc("/admin/summary", adminHandler.Summary)
	mux.HandleFunc("/admin/funnel", adminHandler.Funnel)
	mux.HandleFunc("/admin/events/breakdown", adminHandler.EventBreakdown)
	mux.HandleFunc("/admin/export/submissions.csv", adminHandler.ExportSubmissionsCSV)
	mux.HandleFunc("/admin/policy", adminHandler.Policy)

	server := &http.Server{
		Addr:         envOr("ADDR", ":8080"),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Mortgage Pulse API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
