package main

import (
	"context"
	"os"
	"os/signal"

	"phoenixgrc/riskmatrix/internal/cli"
	"phoenixgrc/riskmatrix/pkg/config"
	phxlog "phoenixgrc/riskmatrix/pkg/log"
)

var version = "dev"

func main() {
	config.LoadConfig()
	defer phxlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, os.Args, os.Stdin, os.Stdout, version); err != nil {
		os.Exit(1)
	}
}
