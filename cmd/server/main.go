package main

import (
	"log"
	"os"

	"project-allocation-api/internal/config"
	"project-allocation-api/internal/database"
	"project-allocation-api/internal/routes"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "server",
		Short:         "Project allocation API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSeedCmd(&configPath))
	return root
}

// newServeCmd creates the "server serve" subcommand.
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			database.InitDB(cfg.DatabasePath)

			ginRoutes := routes.SetupRoutes()

			log.Printf("Server starting on port %s", cfg.Port)
			log.Println("API endpoints:")
			log.Println("  POST   /api/register")
			log.Println("  POST   /api/login")
			log.Println("  GET    /api/projects")
			log.Println("  GET    /api/tasks")
			log.Println("  GET    /api/members")
			log.Println("  POST   /api/allocate/:projectId")
			log.Println("  GET    /api/alerts")
			log.Println("  GET    /api/statistics")
			log.Println("  GET    /health")

			return ginRoutes.Run(cfg.Port)
		},
	}
}
