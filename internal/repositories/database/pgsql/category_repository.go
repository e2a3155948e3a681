package pgsql

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/family_finance_tracker/internal/models"
	"github.com/SscSPs/family_finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `category_id, team_id, name, created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) findOne(ctx context.Context, what, query string, args ...any) (*domain.Category, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, what)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err, what)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return r.findOne(ctx, "find category "+categoryID,
		`SELECT `+categoryColumns+` FROM categories WHERE category_id = $1;`, categoryID)
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, teamID, name string) (*domain.Category, error) {
	return r.findOne(ctx, "find category by name",
		`SELECT `+categoryColumns+` FROM categories WHERE team_id = $1 AND name = $2;`, teamID, name)
}

func (r *PgxCategoryRepository) ListCategoriesByTeam(ctx context.Context, teamID string) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE team_id = $1 ORDER BY name;`, teamID)
	if err != nil {
		return nil, mapPgError(err, "list categories")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err, "list categories")
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (category_id, team_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.CategoryID, m.TeamID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapPgError(err, "save category")
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE categories SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE category_id = $1;`,
		m.CategoryID, m.Name, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapPgError(err, "update category "+m.CategoryID)
	}
	return expectOneRow(tag)
}

// DeleteCategory relies on ON DELETE SET NULL to detach transactions.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return mapPgError(err, "delete category "+categoryID)
	}
	return expectOneRow(tag)
}
