package walkway

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/models"
	"github.com/FACorreiaa/passadia/internal/pkg/store"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository defines the contract for walkway catalog access.
type Repository interface {
	GetAllWalkways(ctx context.Context) ([]models.Walkway, error)
	GetWalkway(ctx context.Context, storageKey string) (*models.Walkway, error)
	UpdateWalkway(ctx context.Context, walkway *models.Walkway) error
}

type RepositoryImpl struct {
	logger *zap.Logger
	store  store.DocumentStore
}

func NewRepository(s store.DocumentStore, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		store:  s,
	}
}

// GetAllWalkways returns the whole catalog with storage keys populated.
// Documents that fail to decode are skipped.
func (r *RepositoryImpl) GetAllWalkways(ctx context.Context) ([]models.Walkway, error) {
	ctx, span := otel.Tracer("WalkwayRepository").Start(ctx, "GetAllWalkways")
	defer span.End()

	l := r.logger.With(zap.String("method", "GetAllWalkways"))

	docs, err := r.store.All(ctx, store.CollectionWalkways)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Walkway scan failed")
		return nil, fmt.Errorf("error fetching walkways: %w", err)
	}

	walkways := make([]models.Walkway, 0, len(docs))
	for _, doc := range docs {
		var w models.Walkway
		if err := store.Decode(doc, &w); err != nil {
			l.Warn("Skipping malformed walkway document", zap.String("key", doc.Key), zap.Error(err))
			continue
		}
		w.StorageKey = doc.Key
		walkways = append(walkways, w)
	}

	span.SetAttributes(attribute.Int("walkways.count", len(walkways)))
	span.SetStatus(codes.Ok, "Walkways fetched")
	return walkways, nil
}

func (r *RepositoryImpl) GetWalkway(ctx context.Context, storageKey string) (*models.Walkway, error) {
	ctx, span := otel.Tracer("WalkwayRepository").Start(ctx, "GetWalkway", trace.WithAttributes(
		attribute.String("walkway.key", storageKey),
	))
	defer span.End()

	doc, err := r.store.Get(ctx, store.CollectionWalkways, storageKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Walkway lookup failed")
		return nil, fmt.Errorf("error fetching walkway %s: %w", storageKey, err)
	}

	var w models.Walkway
	if err := store.Decode(*doc, &w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Decode failed")
		return nil, err
	}
	w.StorageKey = doc.Key

	span.SetStatus(codes.Ok, "Walkway fetched")
	return &w, nil
}

func (r *RepositoryImpl) UpdateWalkway(ctx context.Context, walkway *models.Walkway) error {
	ctx, span := otel.Tracer("WalkwayRepository").Start(ctx, "UpdateWalkway", trace.WithAttributes(
		attribute.String("walkway.key", walkway.StorageKey),
	))
	defer span.End()

	if walkway.StorageKey == "" {
		span.SetStatus(codes.Error, "Missing storage key")
		return fmt.Errorf("walkway without storage key: %w", models.ErrBadRequest)
	}

	body := *walkway
	body.StorageKey = ""
	data, err := store.Encode(body)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := r.store.Put(ctx, store.CollectionWalkways, walkway.StorageKey, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Walkway update failed")
		return fmt.Errorf("error updating walkway: %w", err)
	}

	span.SetStatus(codes.Ok, "Walkway updated")
	return nil
}
