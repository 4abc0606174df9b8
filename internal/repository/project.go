package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/harue/projectboard/internal/domain"
)

// ProjectRepository handles project data access operations.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List retrieves all projects in id order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	projects := []domain.Project{}
	err := r.db.SelectContext(ctx, &projects,
		`SELECT id, project_name, grade, start_date, complete
		 FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// FindByID retrieves a project by its ID.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project,
		`SELECT id, project_name, grade, start_date, complete
		 FROM projects WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project by id %d: %w", id, err)
	}
	return &project, nil
}

// Create inserts a new project row. The store assigns the id.
func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (project_name, grade, start_date, complete)
		 VALUES (?, ?, ?, ?)`,
		project.ProjectName, project.Grade, project.StartDate, project.Complete)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// Update overwrites all fields of the project with the given id. A missing
// id affects zero rows and is not an error.
func (r *ProjectRepository) Update(ctx context.Context, id int64, project domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects
		 SET project_name = ?, grade = ?, start_date = ?, complete = ?
		 WHERE id = ?`,
		project.ProjectName, project.Grade, project.StartDate, project.Complete, id)
	if err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}
	return nil
}

// Delete removes the project with the given id. A missing id affects zero
// rows and is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}
