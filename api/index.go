package handler

import (
	"net/http"
	"salon/config"
	"salon/di"
	"salon/shared/logger"
	"sync"

	transport "salon/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the API as a single serverless function. The dependency graph is built
// on the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.Setup(config.Get())

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
