package walkway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/domain/user"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

// CommentPoints is what a walker earns for sharing an experience.
const CommentPoints = 10

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	List(ctx context.Context) ([]models.Walkway, error)
	Get(ctx context.Context, storageKey string) (*models.Walkway, error)
	AddComment(ctx context.Context, email, storageKey, experience string) (*models.Walkway, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
	users  user.UserService
	now    func() time.Time
}

func NewService(repo Repository, users user.UserService, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		users:  users,
		now:    time.Now,
	}
}

func (s *ServiceImpl) List(ctx context.Context) ([]models.Walkway, error) {
	l := s.logger.With(zap.String("method", "List"))

	walkways, err := s.repo.GetAllWalkways(ctx)
	if err != nil {
		l.Error("Failed to list walkways", zap.Error(err))
		return nil, err
	}

	l.Debug("Walkways listed", zap.Int("count", len(walkways)))
	return walkways, nil
}

func (s *ServiceImpl) Get(ctx context.Context, storageKey string) (*models.Walkway, error) {
	l := s.logger.With(zap.String("method", "Get"), zap.String("key", storageKey))

	w, err := s.repo.GetWalkway(ctx, storageKey)
	if err != nil {
		l.Error("Failed to fetch walkway", zap.Error(err))
		return nil, err
	}
	return w, nil
}

// AddComment appends a public comment and rewards the author. The author must
// resolve to a user before the walkway is touched. The comment and the points
// are two separate writes; a failure awarding points leaves the comment in
// place.
func (s *ServiceImpl) AddComment(ctx context.Context, email, storageKey, experience string) (*models.Walkway, error) {
	ctx, span := otel.Tracer("WalkwayService").Start(ctx, "AddComment", trace.WithAttributes(
		attribute.String("walkway.key", storageKey),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "AddComment"), zap.String("key", storageKey), zap.String("email", email))

	experience = strings.TrimSpace(experience)
	if experience == "" {
		span.SetStatus(codes.Error, "Empty experience")
		return nil, fmt.Errorf("experience is required: %w", models.ErrBadRequest)
	}

	if _, err := s.users.GetUserProfile(ctx, email); err != nil {
		l.Warn("Commenter does not resolve to a user", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Commenter lookup failed")
		return nil, fmt.Errorf("error resolving commenter: %w", err)
	}

	w, err := s.repo.GetWalkway(ctx, storageKey)
	if err != nil {
		l.Error("Failed to fetch walkway", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Walkway lookup failed")
		return nil, err
	}

	w.PublicComments = append(w.PublicComments, models.Comment{
		User:       email,
		Experience: experience,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
	})

	if err := s.repo.UpdateWalkway(ctx, w); err != nil {
		l.Error("Failed to store comment", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Comment write failed")
		return nil, err
	}

	if _, err := s.users.AwardPoints(ctx, email, CommentPoints); err != nil {
		l.Error("Comment stored but points were not awarded", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Points write failed")
		return nil, fmt.Errorf("error awarding comment points: %w", err)
	}

	l.Info("Comment added", zap.Int("comments", len(w.PublicComments)))
	span.SetStatus(codes.Ok, "Comment added")
	return w, nil
}
