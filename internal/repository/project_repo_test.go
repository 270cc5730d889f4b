package repository

import (
	"context"
	"testing"
	"time"

	"ltm_world/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepository(mock)
	createdAt := time.Now()
	link := "https://example.com"

	mock.ExpectQuery(`SELECT id, title, description, link, created_at FROM projects`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "link", "created_at"}).
			AddRow(int64(2), "Two", "Second project", &link, createdAt).
			AddRow(int64(1), "One", "First project", (*string)(nil), createdAt))

	projects, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Two", projects[0].Title)
	require.NotNil(t, projects[0].Link)
	assert.Equal(t, link, *projects[0].Link)
	assert.Nil(t, projects[1].Link)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepository(mock)
	project := &model.Project{
		Title:       "Portfolio",
		Description: "Personal site",
		CreatedAt:   time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs(project.Title, project.Description, project.Link, project.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), project.CreatedAt))

	err = repo.Create(context.Background(), project)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepository(mock)

	mock.ExpectExec(`DELETE FROM projects`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepository(mock)

	mock.ExpectExec(`DELETE FROM projects`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
