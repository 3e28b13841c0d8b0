// Package cli wires the service layer to the cobra command tree. Command
// handlers stay thin: parse arguments, call a service, print the result.
package cli

import (
	"timetrack/internal/config"
	"timetrack/internal/services"
)

// App bundles the services and configuration every command handler needs.
type App struct {
	services *services.ServiceContainer
	config   *config.Config
}

// NewApp creates an App with the given services and configuration
func NewApp(container *services.ServiceContainer, cfg *config.Config) *App {
	return &App{
		services: container,
		config:   cfg,
	}
}

func (a *App) dateFormat() string {
	if a.config != nil && a.config.Display.DateFormat != "" {
		return a.config.Display.DateFormat
	}
	return "2006-01-02"
}

func (a *App) timeFormat() string {
	if a.config != nil && a.config.Display.TimeFormat != "" {
		return a.config.Display.TimeFormat
	}
	return "2006-01-02 15:04"
}
