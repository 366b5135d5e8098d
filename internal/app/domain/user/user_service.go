package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

// Ensure implementation satisfies the interface
var _ UserService = (*ServiceUserImpl)(nil)

// UserService defines the business logic contract for user operations.
type UserService interface {
	GetUserProfile(ctx context.Context, email string) (*models.User, error)
	// AwardPoints adds points to the user's running total.
	AwardPoints(ctx context.Context, email string, points int) (*models.User, error)
}

// ServiceUserImpl provides the implementation for UserService.
type ServiceUserImpl struct {
	logger *zap.Logger
	repo   UserRepo
}

// NewUserService creates a new user service instance.
func NewUserService(repo UserRepo, logger *zap.Logger) *ServiceUserImpl {
	return &ServiceUserImpl{
		logger: logger,
		repo:   repo,
	}
}

// GetUserProfile retrieves a user's document by email.
func (s *ServiceUserImpl) GetUserProfile(ctx context.Context, email string) (*models.User, error) {
	l := s.logger.With(zap.String("method", "GetUserProfile"), zap.String("email", email))
	l.Debug("Fetching user profile")

	profile, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		l.Error("Failed to fetch user profile", zap.Error(err))
		return nil, fmt.Errorf("error fetching user profile: %w", err)
	}

	l.Info("User profile fetched successfully")
	return profile, nil
}

// AwardPoints increments the user's points. Points never go below zero.
func (s *ServiceUserImpl) AwardPoints(ctx context.Context, email string, points int) (*models.User, error) {
	l := s.logger.With(zap.String("method", "AwardPoints"), zap.String("email", email), zap.Int("points", points))
	l.Debug("Awarding points")

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		l.Error("Failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	u.Points += points
	if u.Points < 0 {
		u.Points = 0
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		l.Error("Failed to store points", zap.Error(err))
		return nil, fmt.Errorf("error updating points: %w", err)
	}

	l.Info("Points awarded", zap.Int("total", u.Points))
	return u, nil
}
