package recommendation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/passadia/internal/app/domain/user"
	"github.com/FACorreiaa/passadia/internal/app/domain/walkway"
	"github.com/FACorreiaa/passadia/internal/app/models"
	"github.com/FACorreiaa/passadia/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Service computes walkway recommendations for an authenticated walker.
type Service interface {
	RecommendCollaborative(ctx context.Context, email string, minSimilarity *float64) ([]models.RecommendedWalkway, error)
	RecommendContentBased(ctx context.Context, email string) ([]models.RecommendedWalkway, error)
	RecommendHybrid(ctx context.Context, email string) ([]models.RecommendedWalkway, error)
	FindSimilarUsers(ctx context.Context, email string, minSimilarity *float64) ([]models.SimilarUser, error)
}

type ServiceImpl struct {
	logger   *zap.Logger
	users    user.UserRepo
	walkways walkway.Repository
	limit    int
}

func NewService(users user.UserRepo, walkways walkway.Repository, limit int, logger *zap.Logger) *ServiceImpl {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &ServiceImpl{
		logger:   logger,
		users:    users,
		walkways: walkways,
		limit:    limit,
	}
}

// loadSnapshot resolves the target user, then scans users and walkways in
// parallel. Any failure aborts the whole load.
func (s *ServiceImpl) loadSnapshot(ctx context.Context, email string) (Snapshot, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "loadSnapshot")
	defer span.End()

	target, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Target lookup failed")
		return Snapshot{}, fmt.Errorf("error resolving user: %w", err)
	}

	snap := Snapshot{Target: target}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.users.GetAllUsers(gctx)
		if err != nil {
			return err
		}
		snap.Users = users
		return nil
	})
	g.Go(func() error {
		walkways, err := s.walkways.GetAllWalkways(gctx)
		if err != nil {
			return err
		}
		snap.Walkways = walkways
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Snapshot scan failed")
		return Snapshot{}, fmt.Errorf("error loading recommendation snapshot: %w", err)
	}

	metrics.Get().SnapshotLoadDuration.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("snapshot.users", len(snap.Users)),
		attribute.Int("snapshot.walkways", len(snap.Walkways)),
	)
	return snap, nil
}

// run loads a snapshot, applies compute, and records tracing and metrics for
// the strategy.
func (s *ServiceImpl) run(ctx context.Context, strategy Strategy, email string, compute func(Snapshot) []models.RecommendedWalkway) ([]models.RecommendedWalkway, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, string(strategy), trace.WithAttributes(
		attribute.String("recommendation.strategy", string(strategy)),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", string(strategy)), zap.String("email", email))
	start := time.Now()
	attrs := metric.WithAttributes(attribute.String("strategy", string(strategy)))
	m := metrics.Get()

	snap, err := s.loadSnapshot(ctx, email)
	if err != nil {
		l.Error("Failed to load snapshot", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Snapshot load failed")
		m.RecommendationErrorsTotal.Add(ctx, 1, attrs)
		return nil, err
	}

	result := compute(snap)

	m.RecommendationRequestsTotal.Add(ctx, 1, attrs)
	m.RecommendationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.RecommendationResultSize.Record(ctx, int64(len(result)), attrs)

	l.Info("Recommendations computed", zap.Int("count", len(result)), zap.Duration("took", time.Since(start)))
	span.SetAttributes(attribute.Int("recommendation.count", len(result)))
	span.SetStatus(codes.Ok, "Recommendations computed")
	return result, nil
}

func (s *ServiceImpl) RecommendCollaborative(ctx context.Context, email string, minSimilarity *float64) ([]models.RecommendedWalkway, error) {
	return s.run(ctx, StrategyCollaborative, email, func(snap Snapshot) []models.RecommendedWalkway {
		return Collaborative(snap, minSimilarity, s.limit)
	})
}

func (s *ServiceImpl) RecommendContentBased(ctx context.Context, email string) ([]models.RecommendedWalkway, error) {
	return s.run(ctx, StrategyContentBased, email, func(snap Snapshot) []models.RecommendedWalkway {
		return RecommendContentBased(snap, s.limit)
	})
}

func (s *ServiceImpl) RecommendHybrid(ctx context.Context, email string) ([]models.RecommendedWalkway, error) {
	return s.run(ctx, StrategyHybrid, email, func(snap Snapshot) []models.RecommendedWalkway {
		return RecommendHybridCascade(snap, s.limit)
	})
}

func (s *ServiceImpl) FindSimilarUsers(ctx context.Context, email string, minSimilarity *float64) ([]models.SimilarUser, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "FindSimilarUsers")
	defer span.End()

	l := s.logger.With(zap.String("method", "FindSimilarUsers"), zap.String("email", email))

	snap, err := s.loadSnapshot(ctx, email)
	if err != nil {
		l.Error("Failed to load snapshot", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Snapshot load failed")
		return nil, err
	}

	similar := FindSimilarUsers(snap.Target, snap.Users, NewIDMapper(snap.Walkways), minSimilarity)

	l.Debug("Similar users found", zap.Int("count", len(similar)))
	span.SetAttributes(attribute.Int("similar_users.count", len(similar)))
	span.SetStatus(codes.Ok, "Similar users found")
	return similar, nil
}
