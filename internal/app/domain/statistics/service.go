package statistics

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
	"github.com/FACorreiaa/passadia/internal/pkg/cache"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	TopLiked(ctx context.Context) ([]models.RankedWalkway, error)
	TopExplored(ctx context.Context) ([]models.RankedWalkway, error)
	TopWalkways(ctx context.Context) ([]models.RankedWalkway, error)
}

type ServiceImpl struct {
	logger   *zap.Logger
	users    user.UserRepo
	walkways walkway.Repository
	limit    int
	cache    *cache.Cache[[]models.RankedWalkway]
}

// NewService builds the statistics service. A zero ttl disables caching.
func NewService(users user.UserRepo, walkways walkway.Repository, limit int, ttl time.Duration, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		users:    users,
		walkways: walkways,
		limit:    limit,
		cache:    cache.New[[]models.RankedWalkway](ttl, "statistics", logger),
	}
}

func (s *ServiceImpl) TopLiked(ctx context.Context) ([]models.RankedWalkway, error) {
	return s.ranking(ctx, KindLiked)
}

func (s *ServiceImpl) TopExplored(ctx context.Context) ([]models.RankedWalkway, error) {
	return s.ranking(ctx, KindExplored)
}

func (s *ServiceImpl) TopWalkways(ctx context.Context) ([]models.RankedWalkway, error) {
	return s.ranking(ctx, KindTop)
}

func (s *ServiceImpl) ranking(ctx context.Context, kind Kind) ([]models.RankedWalkway, error) {
	ctx, span := otel.Tracer("StatisticsService").Start(ctx, "Rank", trace.WithAttributes(
		attribute.String("statistics.kind", string(kind)),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "ranking"), zap.String("kind", string(kind)))

	if cached, found := s.cache.Get(string(kind)); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		metrics.Get().StatisticsCacheHitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
		l.Debug("Serving ranking from cache")
		return cached, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	var users []models.User
	var walkways []models.Walkway
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.GetAllUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		walkways, err = s.walkways.GetAllWalkways(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error("Failed to load statistics snapshot", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Snapshot load failed")
		return nil, fmt.Errorf("error loading statistics: %w", err)
	}

	ranked := Rank(kind, CountInteractions(users, walkways), walkways, s.limit)

	s.cache.Set(string(kind), ranked)

	l.Info("Ranking computed", zap.Int("count", len(ranked)))
	span.SetStatus(codes.Ok, "Ranking computed")
	return ranked, nil
}
