package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/bikeshop/internal/bike/domain"
)

var tracer = otel.Tracer("bike-repository")

// TracingBikeRepository wraps a BikeRepository with tracing
type TracingBikeRepository struct {
	next domain.BikeRepository
}

// NewTracingBikeRepository creates a new repository with tracing
func NewTracingBikeRepository(next domain.BikeRepository) *TracingBikeRepository {
	return &TracingBikeRepository{next: next}
}

// Create with tracing
func (r *TracingBikeRepository) Create(ctx context.Context, bike *domain.Bike) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("bike.name", bike.Name),
			attribute.Float64("bike.price", bike.Price),
			attribute.Int("bike.stock", bike.Stock),
			attribute.Int("bike.category_id", int(bike.CategoryID)),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, bike); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("bike.id", int(bike.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingBikeRepository) FindByID(ctx context.Context, id uint) (*domain.Bike, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("bike.id", int(id)),
		),
	)
	defer span.End()

	bike, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("bike.name", bike.Name),
		attribute.String("bike.category", bike.Category.Name),
		attribute.Bool("bike.available", bike.IsAvailable()),
	)
	return bike, nil
}

// FindAll with tracing
func (r *TracingBikeRepository) FindAll(ctx context.Context) ([]domain.Bike, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	bikes, err := r.next.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(bikes)))
	return bikes, nil
}

// Update with tracing
func (r *TracingBikeRepository) Update(ctx context.Context, bike *domain.Bike) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("bike.id", int(bike.ID)),
			attribute.Int("bike.stock", bike.Stock),
			attribute.Int("bike.category_id", int(bike.CategoryID)),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, bike); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete with tracing
func (r *TracingBikeRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("bike.id", int(id)),
		),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Count with tracing
func (r *TracingBikeRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

// CountByCategory with tracing
func (r *TracingBikeRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByCategory",
		trace.WithAttributes(
			attribute.Int("bike.category_id", int(categoryID)),
		),
	)
	defer span.End()

	count, err := r.next.CountByCategory(ctx, categoryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
