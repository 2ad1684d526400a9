package handler

import (
	"net/http"
	"os"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	server "hotel/transport/http"
)

var (
	app  *server.HTTP
	once sync.Once
)

// Handler serves the API as a serverless function. The dependency graph is built on the first
// request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetOutput(cfg, os.Stdout)
		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
