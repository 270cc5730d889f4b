package repository

import (
	"context"
	"errors"
	"fmt"

	"ltm_world/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProjectRepository defines operations for project data
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id int64) (*model.Project, error)
	FindAll(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectRepository struct {
	db DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create inserts a new project into the database
func (r *projectRepository) Create(ctx context.Context, p *model.Project) error {
	sql := `INSERT INTO projects (title, description, link, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.Title, p.Description, p.Link, p.CreatedAt).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindByID retrieves a project by its ID
func (r *projectRepository) FindByID(ctx context.Context, id int64) (*model.Project, error) {
	p := &model.Project{}
	sql := `SELECT id, title, description, link, created_at FROM projects WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find project by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves all projects, newest first
func (r *projectRepository) FindAll(ctx context.Context) ([]model.Project, error) {
	sql := `SELECT id, title, description, link, created_at FROM projects ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// Delete removes a project from the database
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
