package services

import (
	"timetrack/internal/repository/sqlite"
)

// NewServiceContainer wires all services to a shared repository.
func NewServiceContainer(repo sqlite.Repository) *ServiceContainer {
	return &ServiceContainer{
		Timer:   NewTimerService(repo),
		Project: NewProjectService(repo),
		Task:    NewTaskService(repo),
		Report:  NewReportService(repo),
	}
}
