package category

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bikeshop/internal/category/delivery/http"
	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/internal/category/repository"
	"github.com/tair/bikeshop/internal/category/usecase/command"
	"github.com/tair/bikeshop/internal/category/usecase/query"
)

// ProvideCategoryRepository provides the traced category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewTracingCategoryRepository(repository.NewGormCategoryRepository(db))
}

// ProviderSet builds the category HTTP handler. It expects a
// domain.BikeCounter to be provided by the caller.
var ProviderSet = wire.NewSet(
	ProvideCategoryRepository,
	command.NewCreateCategoryHandler,
	command.NewUpdateCategoryHandler,
	command.NewDeleteCategoryHandler,
	query.NewGetCategoryHandler,
	query.NewListCategoriesHandler,
	http.NewCategoryHandler,
)
