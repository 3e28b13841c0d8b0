package services

import (
	"context"
	"time"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	projectValidator *validation.ProjectValidator
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(repo sqlite.Repository) ProjectService {
	return &projectServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		projectValidator: validation.NewProjectValidator(),
	}
}

// CreateProject creates a new active project
func (p *projectServiceImpl) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	trimmedName, err := p.projectValidator.GetValidProjectName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid project name", err)
	}

	project := domain.NewProject(trimmedName, description, time.Now())
	dbProject := p.mapper.Project.ToDatabase(project)
	if err := p.repo.CreateProject(ctx, &dbProject); err != nil {
		return nil, err
	}

	created := p.mapper.Project.FromDatabase(dbProject)
	return &created, nil
}

// GetProject retrieves a project by ID
func (p *projectServiceImpl) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	if err := p.projectValidator.ValidateProjectID(id); err != nil {
		return nil, errors.NewValidationError("invalid project ID", err)
	}

	dbProject, err := p.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project := p.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// ListProjects retrieves all projects
func (p *projectServiceImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := p.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return p.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// ListProjectsByStatus retrieves all projects with the given status
func (p *projectServiceImpl) ListProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	dbProjects, err := p.repo.ListProjectsByStatus(ctx, status.String())
	if err != nil {
		return nil, err
	}
	return p.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// UpdateProject updates an existing project's fields
func (p *projectServiceImpl) UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if err := p.projectValidator.ValidateProjectForCreation(project.Name, project.HourlyRate, project.Budget); err != nil {
		return nil, errors.NewValidationError("invalid project", err)
	}

	// Ensure the project exists before writing
	if _, err := p.repo.GetProject(ctx, project.ID); err != nil {
		return nil, err
	}

	project.UpdatedAt = time.Now()
	dbProject := p.mapper.Project.ToDatabase(project)
	if err := p.repo.UpdateProject(ctx, &dbProject); err != nil {
		return nil, err
	}

	updated := p.mapper.Project.FromDatabase(dbProject)
	return &updated, nil
}

// SetProjectStatus transitions a project's status. Transitions are
// free-form; any status may follow any other.
func (p *projectServiceImpl) SetProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error) {
	project, err := p.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Status = status
	project.UpdatedAt = time.Now()

	dbProject := p.mapper.Project.ToDatabase(*project)
	if err := p.repo.UpdateProject(ctx, &dbProject); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject deletes a project by ID
func (p *projectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	if err := p.projectValidator.ValidateProjectID(id); err != nil {
		return errors.NewValidationError("invalid project ID", err)
	}
	return p.repo.DeleteProject(ctx, id)
}
