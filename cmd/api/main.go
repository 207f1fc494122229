package main

import (
	"context"
	"fmt"
	"net/http"

	"mrm-cyber-api/api/router"
	"mrm-cyber-api/config"
	"mrm-cyber-api/db"
	"mrm-cyber-api/internal/logger"
)

func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	// Storage is optional: a failed or absent connection leaves the API in
	// disabled mode instead of aborting.
	if err := db.Init(context.Background()); err != nil {
		logger.Log.Warnf("storage unavailable, continuing in disabled mode: %v", err)
	}

	h := router.New()

	addr := fmt.Sprintf(":%d", config.Port())
	logger.Log.Infof("MRM Cybersecurity API listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && err != http.ErrServerClosed {
		logger.Log.Error(err)
	}
}
