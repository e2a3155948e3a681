package dto

import (
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	TeamID        string    `json:"teamID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		TeamID:        c.TeamID,
		Name:          c.Name,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: res}
}
