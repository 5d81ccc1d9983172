package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/username/taxdraft/src/config"
	"github.com/username/taxdraft/src/handlers"
	"github.com/username/taxdraft/src/logger"
	"github.com/username/taxdraft/src/policy"
	"github.com/username/taxdraft/src/processors"
	"github.com/username/taxdraft/src/security"
	"github.com/username/taxdraft/src/services"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := config.Cfg.CORSAllowedOrigin

		if allowed == "*" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin == allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, X-API-Key, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Tax draft backend server starting...")

	logger.L.Info("Loading tax policy...")
	pol := policy.Default()
	if path := config.Cfg.TaxPolicyFile; path != "" {
		loaded, err := policy.LoadFile(path)
		if err != nil {
			logger.L.Error("Failed to load tax policy file", "path", path, "error", err)
			os.Exit(1)
		}
		pol = loaded
		logger.L.Info("Tax policy loaded from file", "path", path, "slabs", len(pol.Slabs))
	}

	logger.L.Info("Initializing services and handlers...")
	verifier := security.NewStaticKeyVerifier(config.Cfg.APIKey, config.Cfg.APIKeyBcryptHash)

	profitCalculator := processors.NewProfitCalculator()
	growthProjector := processors.NewGrowthProjector()
	continuityEnforcer := processors.NewContinuityEnforcer()
	capitalComposer := processors.NewCapitalComposer(pol.Labels)
	taxCalculator := processors.NewTaxCalculator(pol)

	computationService := services.NewComputationService(
		pol, profitCalculator, growthProjector,
		continuityEnforcer, capitalComposer, taxCalculator,
	)

	computeHandler := handlers.NewComputeHandler(computationService)
	excelHandler := handlers.NewExcelHandler(computationService)

	logger.L.Info("Configuring routes...")
	requireKey := handlers.APIKeyMiddleware(verifier)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.HandlePing)
	mux.Handle("POST /compute", requireKey(http.HandlerFunc(computeHandler.HandleCompute)))
	mux.Handle("POST /report", requireKey(http.HandlerFunc(computeHandler.HandleReport)))
	mux.Handle("POST /excel", requireKey(http.HandlerFunc(excelHandler.HandleExcel)))
	mux.HandleFunc("/", handlers.HandleRoot)

	logger.L.Info("Applying global middleware...")
	rateLimiter := handlers.NewClientRateLimiter(config.Cfg.RateLimitRPS, config.Cfg.RateLimitBurst)
	finalHandler := handlers.RequestIDMiddleware(enableCORS(rateLimiter.Middleware(mux)))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.L.Info("Server starting", "address", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for a termination signal, then drain in-flight requests
	// before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L.Info("Shutdown signal received, draining connections...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.L.Info("Server stopped gracefully.")
}
