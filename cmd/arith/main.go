package main

import (
	"fmt"
	"log"

	"github.com/aussiebroadwan/arith/internal/arith/app"
	"github.com/spf13/cobra"
)

var (
	port int

	rootCmd = &cobra.Command{
		Use:          "arith",
		Short:        "Authenticated arithmetic service with per-user history",
		SilenceUsage: true,
		RunE:         serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  serve,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Migrate(app.LoadConfig())
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "HTTP port (overrides PORT)")
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg := app.LoadConfig()
	if port != 0 {
		cfg.Port = port
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("arith: %v", err)
	}
}
