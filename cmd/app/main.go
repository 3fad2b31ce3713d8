package main

import (
	"os"
	"roombooking/config"
	"roombooking/di"
	"roombooking/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLoggerWithOutput(os.Stdout, cfg.Server.Env)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
