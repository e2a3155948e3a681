package services

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
)

type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, identity *domain.Identity, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategory(ctx context.Context, identity *domain.Identity, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, identity *domain.Identity) ([]domain.Category, error)
	RenameCategory(ctx context.Context, identity *domain.Identity, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, identity *domain.Identity, categoryID string) error

	// CategoryHistory pages through a category's transactions, newest first.
	CategoryHistory(ctx context.Context, identity *domain.Identity, categoryID string, limit int, nextToken string) (*domain.TransactionPage, error)
}
