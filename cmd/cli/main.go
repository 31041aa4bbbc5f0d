package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/emilgroup/policy-report/pkg/export"
	"github.com/emilgroup/policy-report/pkg/runtime/terminal"
	"github.com/emilgroup/policy-report/pkg/services/config"
	"github.com/emilgroup/policy-report/pkg/services/report"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		}
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	profile, err := config.Resolve("", config.EnvironmentFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Generator: report.NewGenerator(report.NewClients(profile)),
		Writer:    export.NewWriter(""),
		Context:   ctx,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
