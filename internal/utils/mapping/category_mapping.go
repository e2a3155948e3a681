package mapping

import (
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		TeamID:      d.TeamID,
		Name:        d.Name,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		TeamID:      m.TeamID,
		Name:        m.Name,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	return mapSlice(ms, ToDomainCategory)
}
