package handler

import (
	"darshan/config"
	"darshan/di"
	"darshan/shared/logger"
	"net/http"
	"sync"
)

var (
	server http.Handler
	once   sync.Once
)

// Handler is the serverless entry point. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
