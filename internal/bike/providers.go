package bike

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/bikeshop/internal/bike/delivery/http"
	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/internal/bike/repository"
	"github.com/tair/bikeshop/internal/bike/usecase/command"
	"github.com/tair/bikeshop/internal/bike/usecase/query"
	categorydomain "github.com/tair/bikeshop/internal/category/domain"
)

// ProvideBikeRepository provides the traced bike repository
func ProvideBikeRepository(db *gorm.DB) domain.BikeRepository {
	return repository.NewTracingBikeRepository(repository.NewGormBikeRepository(db))
}

// ProvideCategoryFinder lets bike commands resolve categories
func ProvideCategoryFinder(repo categorydomain.CategoryRepository) domain.CategoryFinder {
	return repo
}

// ProviderSet builds the bike HTTP handler
var ProviderSet = wire.NewSet(
	ProvideBikeRepository,
	ProvideCategoryFinder,
	command.NewCreateBikeHandler,
	command.NewUpdateBikeHandler,
	command.NewDeleteBikeHandler,
	query.NewGetBikeHandler,
	query.NewListBikesHandler,
	http.NewBikeHandler,
)
