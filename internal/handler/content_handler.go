package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"ltm_world/internal/middleware"
	"ltm_world/internal/model"
	"ltm_world/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler handles project, post and contact requests
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

// Helper to get the authenticated identity from context
func getAuthIdentity(c *gin.Context) (string, error) {
	identityVal, exists := c.Get(middleware.AuthIdentityKey)
	if !exists {
		return "", errors.New("identity not found in context")
	}
	identity, ok := identityVal.(string)
	if !ok {
		return "", errors.New("invalid identity type in context")
	}
	return identity, nil
}

// --- Projects ---

func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.GetProjects(c.Request.Context())
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := h.service.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error getting project by ID: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error deleting project: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// --- Posts ---

func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.GetPosts(c.Request.Context())
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := h.service.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error getting post by ID: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	author, err := getAuthIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), author, req)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), postID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error deleting post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// --- Contacts ---

func (h *ContentHandler) SubmitContact(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.service.SubmitContact(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error saving contact submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you, " + contact.Name + "! We'll get back to you soon.",
		"id":      contact.ID,
	})
}

func (h *ContentHandler) ListContactsAdmin(c *gin.Context) {
	contacts, err := h.service.GetContacts(c.Request.Context())
	if err != nil {
		log.Printf("Error listing contacts for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContentHandler) DeleteContactAdmin(c *gin.Context) {
	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), contactID); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error deleting contact: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// RegisterContentRoutes registers content routes. Reads on projects and posts
// are public; every mutation except the contact form requires an admin token.
func (h *ContentHandler) RegisterContentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	projectRoutes := rg.Group("/projects")
	{
		projectRoutes.GET("", h.ListProjects)
		projectRoutes.GET("/:id", h.GetProject)
		projectRoutes.POST("", authMW, adminMW, h.CreateProject)
		projectRoutes.DELETE("/:id", authMW, adminMW, h.DeleteProject)
	}

	postRoutes := rg.Group("/posts")
	{
		postRoutes.GET("", h.ListPosts)
		postRoutes.GET("/:id", h.GetPost)
		postRoutes.POST("", authMW, adminMW, h.CreatePost)
		postRoutes.DELETE("/:id", authMW, adminMW, h.DeletePost)
	}

	// Public contact form, matching the site's frontend
	rg.POST("/contact", h.SubmitContact)

	// Admin-only contact inbox
	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("/contacts", h.ListContactsAdmin)
		adminRoutes.DELETE("/contacts/:id", h.DeleteContactAdmin)
	}
}
