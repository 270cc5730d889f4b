package model

import "time"

// Project represents a portfolio project entry
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        *string   `json:"link,omitempty"` // Pointer for optional field
	CreatedAt   time.Time `json:"created_at"`
}

// Post represents a blog post
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"` // identity of the admin who created it
	CreatedAt time.Time `json:"created_at"`
}

// Contact represents a contact form submission
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProjectRequest is used for creating a new project
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Link        *string `json:"link"`
}

// CreatePostRequest is used for creating a new post
type CreatePostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// CreateContactRequest is the public contact form payload
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
