package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/emilgroup/policy-report/pkg/server"
	"github.com/emilgroup/policy-report/pkg/services/config"
	"github.com/emilgroup/policy-report/pkg/services/report"
)

var (
	profilePath string
	addr        string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the policy report over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "config", "c", "",
		"Path to the profile file (defaults to ./emil.yaml when present)")
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Error loading .env file: %v\n", err)
		}
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	profile, err := config.Resolve(profilePath, config.EnvironmentFromEnv())
	if err != nil {
		return fmt.Errorf("failed to resolve profile: %w", err)
	}

	generator := report.NewGenerator(report.NewClients(profile))

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Generator: generator,
		},
	})

	return api.Start()
}
