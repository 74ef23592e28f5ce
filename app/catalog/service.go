package catalog

import (
	"context"

	"github.com/brickfolio/figure-catalog/models"
)

// FigureProvider is the read side of the figure store.
type FigureProvider interface {
	GetFilteredFigures(ctx context.Context, filters models.FigureFilters) ([]models.Figure, error)
	GetByID(ctx context.Context, id string) (*models.Figure, error)
}

// CategoryProvider is the read side of the category store.
type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

// Service bundles the catalog read path behind a single dependency so
// callers do not have to hold both stores.
type Service struct {
	figures    FigureProvider
	categories CategoryProvider
}

func NewService(figures FigureProvider, categories CategoryProvider) *Service {
	return &Service{
		figures:    figures,
		categories: categories,
	}
}

// List returns the figures matching the optional category (slug or name) and
// name-search filters, ordered ascending by id.
func (s *Service) List(ctx context.Context, category, search string) ([]models.Figure, error) {
	return s.figures.GetFilteredFigures(ctx, models.FigureFilters{
		Category: category,
		Search:   search,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*models.Figure, error) {
	return s.figures.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAllCategories(ctx)
}
