package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ltm_world/internal/model"
	"ltm_world/internal/repository"
	"ltm_world/internal/utils"
)

var (
	ErrUserAlreadyExists = errors.New("user with this identity already exists")
	// ErrInvalidCredentials covers both unknown identity and wrong password,
	// so a caller cannot probe which identities exist.
	ErrInvalidCredentials = errors.New("invalid identity or password")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, identity, password string) (*model.User, string, error)
	Login(ctx context.Context, identity, password string) (*model.User, string, error)
	FindByIdentity(ctx context.Context, identity string) (*model.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtUtil       *utils.JWTUtil
	adminIdentity string // identity that registers with the admin role
}

// NewAuthService creates a new AuthService. adminIdentity may be empty, in
// which case every registration gets the default user role.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, adminIdentity string) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtUtil:       jwtUtil,
		adminIdentity: adminIdentity,
	}
}

// Register creates a new user account and returns it with a fresh token
func (s *authService) Register(ctx context.Context, identity, password string) (*model.User, string, error) {
	existingUser, err := s.userRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	userRole := model.RoleUser // Default role
	if s.adminIdentity != "" && identity == s.adminIdentity {
		userRole = model.RoleAdmin
		log.Printf("INFO: User %s is being registered as ADMIN via initial admin identity.", identity)
	}

	user := &model.User{
		Identity:     identity,
		PasswordHash: hashedPassword,
		Role:         userRole,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The pre-check above races concurrent registrations; the unique
		// constraint decides the winner.
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.Identity, user.Role)
	if err != nil {
		log.Printf("ERROR: User %s (ID: %d) created, but failed to generate token: %v", user.Identity, user.ID, err)
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a JWT token
func (s *authService) Login(ctx context.Context, identity, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by identity: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.Identity, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// FindByIdentity looks up the account behind an authenticated identity
func (s *authService) FindByIdentity(ctx context.Context, identity string) (*model.User, error) {
	user, err := s.userRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("error finding user by identity: %w", err)
	}
	return user, nil
}
