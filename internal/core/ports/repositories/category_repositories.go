package repositories

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	// FindCategoryByName matches the stored name exactly.
	FindCategoryByName(ctx context.Context, teamID, name string) (*domain.Category, error)
	ListCategoriesByTeam(ctx context.Context, teamID string) ([]domain.Category, error)
}

type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	// DeleteCategory leaves the category's transactions uncategorized.
	DeleteCategory(ctx context.Context, categoryID string) error
}

type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
