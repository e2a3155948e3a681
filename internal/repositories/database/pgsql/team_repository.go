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

const teamColumns = `t.team_id, t.name, t.personal_team, t.owner_id,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

type PgxTeamRepository struct {
	BaseRepository
}

func newPgxTeamRepository(pool *pgxpool.Pool) *PgxTeamRepository {
	return &PgxTeamRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TeamRepositoryWithTx = (*PgxTeamRepository)(nil)

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+teamColumns+` FROM teams t WHERE t.team_id = $1;`, teamID)
	if err != nil {
		return nil, mapPgError(err, "find team "+teamID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Team])
	if err != nil {
		return nil, mapPgError(err, "find team "+teamID)
	}
	team := mapping.ToDomainTeam(m)
	return &team, nil
}

func (r *PgxTeamRepository) ListTeamsForUser(ctx context.Context, userID string) ([]domain.Team, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+teamColumns+`
		FROM teams t
		WHERE t.owner_id = $1
		   OR EXISTS (SELECT 1 FROM team_user tu WHERE tu.team_id = t.team_id AND tu.user_id = $1)
		ORDER BY t.personal_team DESC, t.name;`, userID)
	if err != nil {
		return nil, mapPgError(err, "list teams")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Team])
	if err != nil {
		return nil, mapPgError(err, "list teams")
	}
	return mapping.ToDomainTeamSlice(ms), nil
}

func (r *PgxTeamRepository) ListOwnedTeamIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT team_id FROM teams WHERE owner_id = $1;`, userID)
	if err != nil {
		return nil, mapPgError(err, "list owned teams")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapPgError(err, "list owned teams")
	}
	return ids, nil
}

func (r *PgxTeamRepository) ListMembershipsForUser(ctx context.Context, userID string) ([]domain.TeamMembership, error) {
	rows, err := r.Pool.Query(ctx, `SELECT team_id, user_id, role, joined_at FROM team_user WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, mapPgError(err, "list memberships")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TeamUser])
	if err != nil {
		return nil, mapPgError(err, "list memberships")
	}
	return mapping.ToDomainMembershipSlice(ms), nil
}

func (r *PgxTeamRepository) SaveTeamInTx(ctx context.Context, tx pgx.Tx, team domain.Team) error {
	m := mapping.ToModelTeam(team)
	_, err := tx.Exec(ctx, `
		INSERT INTO teams (team_id, name, personal_team, owner_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.TeamID, m.Name, m.PersonalTeam, m.OwnerID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapPgError(err, "save team")
}

func (r *PgxTeamRepository) AddMember(ctx context.Context, membership domain.TeamMembership) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO team_user (team_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_id, user_id) DO UPDATE SET role = EXCLUDED.role;`,
		membership.TeamID, membership.UserID, string(membership.Role), membership.JoinedAt)
	return mapPgError(err, "add team member")
}
