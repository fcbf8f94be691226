package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"net/http"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
