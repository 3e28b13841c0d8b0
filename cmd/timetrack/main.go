package main

import (
	"fmt"
	"os"

	"timetrack/internal/cli"
	"timetrack/internal/config"
	"timetrack/internal/logging"
	"timetrack/internal/services"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	logging.Debugf("using database %s\n", cfg.GetDatabasePath())

	container := services.NewServiceContainer(repo)
	root := cli.NewRootCommand(container, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
