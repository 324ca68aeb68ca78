package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/skybrief/skybrief/internal/buildinfo"
	"github.com/skybrief/skybrief/internal/client/cli"
	"github.com/skybrief/skybrief/internal/client/config"
	"github.com/skybrief/skybrief/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env file is fine, the environment still applies.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewText(os.Stdout, cfg.LogLevel)

	app := cli.NewApp(ctx, cfg, log)
	app.Run(ctx)

}
