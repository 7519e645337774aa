package main

import (
	"context"
	"os/signal"
	"syscall"
	"termin/config"
	"termin/di"
	"termin/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := di.InitializeSweeper()
	runner.Run(ctx)
}
