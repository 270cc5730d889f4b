package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ltm_world/internal/model"
	"ltm_world/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrContactNotFound = errors.New("contact not found")
)

// ContentService defines operations for projects, posts and contact submissions
type ContentService interface {
	CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*model.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	CreatePost(ctx context.Context, author string, req model.CreatePostRequest) (*model.Post, error)
	GetPosts(ctx context.Context) ([]model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error

	SubmitContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error)
	GetContacts(ctx context.Context) ([]model.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type contentService struct {
	projectRepo repository.ProjectRepository
	postRepo    repository.PostRepository
	contactRepo repository.ContactRepository
}

// NewContentService creates a new ContentService
func NewContentService(projectRepo repository.ProjectRepository, postRepo repository.PostRepository, contactRepo repository.ContactRepository) ContentService {
	return &contentService{
		projectRepo: projectRepo,
		postRepo:    postRepo,
		contactRepo: contactRepo,
	}
}

// --- Projects ---

func (s *contentService) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		CreatedAt:   time.Now(),
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project in repo: %w", err)
	}
	return project, nil
}

func (s *contentService) GetProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects from repo: %w", err)
	}
	return projects, nil
}

func (s *contentService) GetProjectByID(ctx context.Context, id int64) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find project by ID: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *contentService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project in repo: %w", err)
	}
	return nil
}

// --- Posts ---

func (s *contentService) CreatePost(ctx context.Context, author string, req model.CreatePostRequest) (*model.Post, error) {
	post := &model.Post{
		Title:     req.Title,
		Body:      req.Body,
		Author:    author,
		CreatedAt: time.Now(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post in repo: %w", err)
	}
	return post, nil
}

func (s *contentService) GetPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts from repo: %w", err)
	}
	return posts, nil
}

func (s *contentService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find post by ID: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *contentService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post in repo: %w", err)
	}
	return nil
}

// --- Contacts ---

func (s *contentService) SubmitContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repo: %w", err)
	}
	return contact, nil
}

func (s *contentService) GetContacts(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts from repo: %w", err)
	}
	return contacts, nil
}

func (s *contentService) DeleteContact(ctx context.Context, id int64) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact in repo: %w", err)
	}
	return nil
}
