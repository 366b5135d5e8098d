package user

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

var _ UserRepo = (*DocumentUserRepo)(nil)

// UserRepo defines the contract for user document access.
type UserRepo interface {
	// GetUserByEmail resolves exactly one user or fails with models.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// DocumentUserRepo reads and writes the users collection.
type DocumentUserRepo struct {
	logger *zap.Logger
	store  store.DocumentStore
}

func NewDocumentUserRepo(s store.DocumentStore, logger *zap.Logger) *DocumentUserRepo {
	return &DocumentUserRepo{
		logger: logger,
		store:  s,
	}
}

// GetUserByEmail implements UserRepo.
func (r *DocumentUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "GetUserByEmail", trace.WithAttributes(
		attribute.String("user.email", email),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "GetUserByEmail"), zap.String("email", email))

	docs, err := r.store.Where(ctx, store.CollectionUsers, "email", email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User lookup failed")
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if len(docs) != 1 {
		l.Warn("Email does not resolve to exactly one user", zap.Int("matches", len(docs)))
		span.SetStatus(codes.Error, "User not found")
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}

	var u models.User
	if err := store.Decode(docs[0], &u); err != nil {
		l.Error("Failed to decode user document", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Decode failed")
		return nil, err
	}
	u.StorageKey = docs[0].Key

	span.SetStatus(codes.Ok, "User fetched")
	return &u, nil
}

// GetAllUsers implements UserRepo. Documents that fail to decode are skipped.
func (r *DocumentUserRepo) GetAllUsers(ctx context.Context) ([]models.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "GetAllUsers")
	defer span.End()

	l := r.logger.With(zap.String("method", "GetAllUsers"))

	docs, err := r.store.All(ctx, store.CollectionUsers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User scan failed")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var u models.User
		if err := store.Decode(doc, &u); err != nil {
			l.Warn("Skipping malformed user document", zap.String("key", doc.Key), zap.Error(err))
			continue
		}
		u.StorageKey = doc.Key
		users = append(users, u)
	}

	l.Debug("Users fetched", zap.Int("count", len(users)))
	span.SetAttributes(attribute.Int("users.count", len(users)))
	span.SetStatus(codes.Ok, "Users fetched")
	return users, nil
}

// UpdateUser implements UserRepo.
func (r *DocumentUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "UpdateUser", trace.WithAttributes(
		attribute.String("user.key", user.StorageKey),
	))
	defer span.End()

	if user.StorageKey == "" {
		span.SetStatus(codes.Error, "Missing storage key")
		return fmt.Errorf("user without storage key: %w", models.ErrBadRequest)
	}

	body := *user
	body.StorageKey = ""
	data, err := store.Encode(body)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := r.store.Put(ctx, store.CollectionUsers, user.StorageKey, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User update failed")
		return fmt.Errorf("error updating user: %w", err)
	}

	span.SetStatus(codes.Ok, "User updated")
	return nil
}
