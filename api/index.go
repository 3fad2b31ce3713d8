package handler

import (
	"net/http"
	"os"
	"roombooking/config"
	"roombooking/di"
	"roombooking/shared/logger"
	"sync"

	transport "roombooking/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLoggerWithOutput(os.Stdout, cfg.Server.Env)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
