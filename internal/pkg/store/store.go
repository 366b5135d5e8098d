// Package store is the document-store boundary. Walkways and users are kept
// as JSON documents grouped in collections; callers only ever fetch a whole
// collection, filter it on one top-level field, or replace a single document.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/models"
)

// Collection names.
const (
	CollectionWalkways = "walkways"
	CollectionUsers    = "users"
)

const documentsTable = "documents"

var _ DocumentStore = (*PostgresStore)(nil)

// Document is a stored JSON body and the key it lives under.
type Document struct {
	Key  string
	Data []byte
}

// DocumentStore defines the query primitives the domain repositories use.
type DocumentStore interface {
	// All returns every document in the collection, ordered by key.
	All(ctx context.Context, collection string) ([]Document, error)
	// Where returns the documents whose top-level field equals value.
	Where(ctx context.Context, collection, field, value string) ([]Document, error)
	// Get returns one document or models.ErrNotFound.
	Get(ctx context.Context, collection, key string) (*Document, error)
	// Put creates or replaces a document.
	Put(ctx context.Context, collection, key string, data []byte) error
}

// Querier is the subset of pgxpool.Pool the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ScanObserver receives the duration of every store round trip.
type ScanObserver func(ctx context.Context, operation, collection string, d time.Duration, err error)

// PostgresStore keeps documents in a JSONB table.
type PostgresStore struct {
	db       Querier
	logger   *zap.Logger
	psql     sq.StatementBuilderType
	observer ScanObserver
}

// NewPostgresStore creates a store over a pgx pool (or a pgxmock pool in tests).
func NewPostgresStore(db Querier, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: logger,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// WithObserver registers a callback for round-trip timings.
func (s *PostgresStore) WithObserver(o ScanObserver) *PostgresStore {
	s.observer = o
	return s
}

func (s *PostgresStore) observe(ctx context.Context, op, collection string, start time.Time, err error) {
	if s.observer != nil {
		s.observer(ctx, op, collection, time.Since(start), err)
	}
}

// All implements DocumentStore.
func (s *PostgresStore) All(ctx context.Context, collection string) (docs []Document, err error) {
	ctx, span := otel.Tracer("DocumentStore").Start(ctx, "All", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", documentsTable),
		attribute.String("db.collection", collection),
	))
	defer span.End()
	defer func(start time.Time) { s.observe(ctx, "all", collection, start, err) }(time.Now())

	query, args, err := s.psql.
		Select("key", "data").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("key").
		ToSql()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build query")
		return nil, fmt.Errorf("failed to build collection scan: %w", err)
	}

	docs, err = s.query(ctx, query, args...)
	if err != nil {
		s.logger.Error("Collection scan failed", zap.String("collection", collection), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error scanning %s: %w", collection, err)
	}

	span.SetAttributes(attribute.Int("db.documents", len(docs)))
	span.SetStatus(codes.Ok, "Collection scanned")
	return docs, nil
}

// Where implements DocumentStore.
func (s *PostgresStore) Where(ctx context.Context, collection, field, value string) (docs []Document, err error) {
	ctx, span := otel.Tracer("DocumentStore").Start(ctx, "Where", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", documentsTable),
		attribute.String("db.collection", collection),
		attribute.String("db.field", field),
	))
	defer span.End()
	defer func(start time.Time) { s.observe(ctx, "where", collection, start, err) }(time.Now())

	query, args, err := s.psql.
		Select("key", "data").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		Where(sq.Expr("data->>? = ?", field, value)).
		OrderBy("key").
		ToSql()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build query")
		return nil, fmt.Errorf("failed to build filtered query: %w", err)
	}

	docs, err = s.query(ctx, query, args...)
	if err != nil {
		s.logger.Error("Filtered query failed",
			zap.String("collection", collection),
			zap.String("field", field),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error querying %s by %s: %w", collection, field, err)
	}

	span.SetStatus(codes.Ok, "Documents fetched")
	return docs, nil
}

// Get implements DocumentStore.
func (s *PostgresStore) Get(ctx context.Context, collection, key string) (doc *Document, err error) {
	ctx, span := otel.Tracer("DocumentStore").Start(ctx, "Get", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", documentsTable),
		attribute.String("db.collection", collection),
		attribute.String("db.key", key),
	))
	defer span.End()
	defer func(start time.Time) { s.observe(ctx, "get", collection, start, err) }(time.Now())

	query, args, err := s.psql.
		Select("key", "data").
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to build document query: %w", err)
	}

	var d Document
	err = s.db.QueryRow(ctx, query, args...).Scan(&d.Key, &d.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Document not found")
			return nil, fmt.Errorf("%s/%s: %w", collection, key, models.ErrNotFound)
		}
		s.logger.Error("Failed to fetch document",
			zap.String("collection", collection),
			zap.String("key", key),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching %s/%s: %w", collection, key, err)
	}

	span.SetStatus(codes.Ok, "Document fetched")
	return &d, nil
}

// Put implements DocumentStore.
func (s *PostgresStore) Put(ctx context.Context, collection, key string, data []byte) (err error) {
	ctx, span := otel.Tracer("DocumentStore").Start(ctx, "Put", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPSERT"),
		attribute.String("db.sql.table", documentsTable),
		attribute.String("db.collection", collection),
		attribute.String("db.key", key),
	))
	defer span.End()
	defer func(start time.Time) { s.observe(ctx, "put", collection, start, err) }(time.Now())

	if !json.Valid(data) {
		span.SetStatus(codes.Error, "Invalid document body")
		return fmt.Errorf("document %s/%s is not valid JSON: %w", collection, key, models.ErrValidation)
	}

	query, args, err := s.psql.
		Insert(documentsTable).
		Columns("collection", "key", "data").
		Values(collection, key, data).
		Suffix("ON CONFLICT (collection, key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to build upsert: %w", err)
	}

	if _, err = s.db.Exec(ctx, query, args...); err != nil {
		s.logger.Error("Failed to write document",
			zap.String("collection", collection),
			zap.String("key", key),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB upsert failed")
		return fmt.Errorf("database error writing %s/%s: %w", collection, key, err)
	}

	span.SetStatus(codes.Ok, "Document written")
	return nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]Document, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Key, &d.Data); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read document rows: %w", err)
	}
	return docs, nil
}

// Decode unmarshals a document body into v.
func Decode(doc Document, v any) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return fmt.Errorf("decode document %s: %w", doc.Key, err)
	}
	return nil
}

// Encode marshals v into a document body.
func Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}
