package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/utils/pagination"
	"github.com/google/uuid"
)

const nameTakenMessage = "has already been taken"

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	txnRepo      portsrepo.TransactionReader
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) loadCategory(ctx context.Context, identity *domain.Identity, categoryID string, ability policy.Ability) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		return nil, err
	}
	if err := policy.Categories.Authorize(ability, identity, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ensureNameFree reports a field error when another category of the team
// already uses name.
func (s *categoryService) ensureNameFree(ctx context.Context, teamID, name, exceptID string) error {
	existing, err := s.categoryRepo.FindCategoryByName(ctx, teamID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to look up category by name", slog.String("team_id", teamID))
		return err
	}
	if existing.CategoryID != exceptID {
		return apperrors.NewFieldError("name", nameTakenMessage)
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, identity *domain.Identity, req dto.CreateCategoryRequest) (*domain.Category, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := policy.Categories.AuthorizeCreate(identity); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "is required")
	}
	if err := s.ensureNameFree(ctx, teamID, name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		TeamID:     teamID,
		Name:       name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     identity.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: identity.UserID,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("name", nameTakenMessage)
		}
		s.LogError(ctx, err, "Failed to save category", slog.String("team_id", teamID))
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, identity *domain.Identity, categoryID string) (*domain.Category, error) {
	return s.loadCategory(ctx, identity, categoryID, policy.AbilityView)
}

func (s *categoryService) ListCategories(ctx context.Context, identity *domain.Identity) ([]domain.Category, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategoriesByTeam(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("team_id", teamID))
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) RenameCategory(ctx context.Context, identity *domain.Identity, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.loadCategory(ctx, identity, categoryID, policy.AbilityUpdate)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "is required")
	}
	if name == category.Name {
		return category, nil
	}
	if err := s.ensureNameFree(ctx, category.TeamID, name, category.CategoryID); err != nil {
		return nil, err
	}

	category.Name = name
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = identity.UserID
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("name", nameTakenMessage)
		}
		s.LogError(ctx, err, "Failed to rename category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, identity *domain.Identity, categoryID string) error {
	if _, err := s.loadCategory(ctx, identity, categoryID, policy.AbilityDelete); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *categoryService) CategoryHistory(ctx context.Context, identity *domain.Identity, categoryID string, limit int, nextToken string) (*domain.TransactionPage, error) {
	category, err := s.loadCategory(ctx, identity, categoryID, policy.AbilityView)
	if err != nil {
		return nil, err
	}
	cursor, err := pagination.DecodeTransactionCursor(nextToken)
	if err != nil {
		return nil, apperrors.NewFieldError("nextToken", "is not a valid page token")
	}

	page, err := listPage(ctx, s.txnRepo, domain.TransactionFilter{
		TeamID:     category.TeamID,
		CategoryID: &category.CategoryID,
		Limit:      clampLimit(limit, maxPageSize),
		After:      cursor,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list category history", slog.String("category_id", categoryID))
		return nil, err
	}
	return page, nil
}
