package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/bikeshop/internal/category/domain"
)

var tracer = otel.Tracer("category-repository")

// TracingCategoryRepository wraps a CategoryRepository with tracing
type TracingCategoryRepository struct {
	next domain.CategoryRepository
}

// NewTracingCategoryRepository creates a new repository with tracing
func NewTracingCategoryRepository(next domain.CategoryRepository) *TracingCategoryRepository {
	return &TracingCategoryRepository{next: next}
}

func (r *TracingCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("category.name", category.Name),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, category); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("category.id", int(category.ID)))
	return nil
}

func (r *TracingCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("category.id", int(id)),
		),
	)
	defer span.End()

	category, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("category.name", category.Name))
	return category, nil
}

func (r *TracingCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	categories, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(categories)))
	return categories, nil
}

func (r *TracingCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("category.id", int(category.ID)),
			attribute.String("category.name", category.Name),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, category); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingCategoryRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("category.id", int(id)),
		),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingCategoryRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
