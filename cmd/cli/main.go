package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"roombooking/config"
	"roombooking/di"
	"roombooking/shared/logger"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := di.InitializeCLI().Run(ctx, os.Args)

	stop()

	if err == nil {
		return
	}

	code := 1

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}

	if msg := err.Error(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}

	os.Exit(code)
}
