package handler

import (
	"net/http"
	"sync"

	"go-contact-relay/config"
	"go-contact-relay/internal/app"
	"go-contact-relay/pkg/logger"
	"go-contact-relay/pkg/security"
	"go-contact-relay/pkg/telemetry"
)

var (
	initServerless sync.Once
	initErr        error
	cachedHandler  http.Handler
)

// Handler is the entry point for Vercel serverless functions
func Handler(w http.ResponseWriter, r *http.Request) {
	initServerless.Do(func() {
		var cfg *config.Config
		cfg, initErr = config.LoadConfig()
		if initErr != nil {
			return
		}
		logger.Init(cfg.IsProduction())

		a := app.New(cfg, security.InitSecurityLogger(cfg.ServiceName, cfg.Environment))
		cachedHandler = telemetry.WrapHandler(cfg.ServiceName, a.Router)
	})

	if initErr != nil {
		logger.Log.Error("Contact function failed to initialize", "error", initErr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Server error"}`))
		return
	}

	cachedHandler.ServeHTTP(w, r)
}
