package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/family_finance_tracker/internal/models"
	"github.com/SscSPs/family_finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, name, email, password_hash, auth_provider, provider_user_id, current_team_id,
	refresh_token_hash, refresh_token_expires_at, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) findOne(ctx context.Context, what, where string, args ...any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+`;`, args...)
	if err != nil {
		return nil, mapPgError(err, what)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, mapPgError(err, what)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "find user "+userID, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "find user by email", "email = $1", email)
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "find user by provider", "auth_provider = $1 AND provider_user_id = $2", string(provider), providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (user_id, name, email, password_hash, auth_provider, provider_user_id, current_team_id,
			created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.AuthProvider, m.ProviderUserID, m.CurrentTeamID,
		m.CreatedAt, m.LastUpdatedAt)
	return mapPgError(err, "save user")
}

const updateCurrentTeamSQL = `UPDATE users SET current_team_id = $2, last_updated_at = $3 WHERE user_id = $1;`

func (r *PgxUserRepository) UpdateCurrentTeam(ctx context.Context, userID, teamID string) error {
	tag, err := r.Pool.Exec(ctx, updateCurrentTeamSQL, userID, teamID, time.Now().UTC())
	if err != nil {
		return mapPgError(err, "update current team")
	}
	return expectOneRow(tag)
}

func (r *PgxUserRepository) UpdateCurrentTeamInTx(ctx context.Context, tx pgx.Tx, userID, teamID string) error {
	tag, err := tx.Exec(ctx, updateCurrentTeamSQL, userID, teamID, time.Now().UTC())
	if err != nil {
		return mapPgError(err, "update current team")
	}
	return expectOneRow(tag)
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE users SET refresh_token_hash = $2, refresh_token_expires_at = $3 WHERE user_id = $1;`,
		userID, tokenHash, expiresAt.UTC())
	if err != nil {
		return mapPgError(err, "update refresh token")
	}
	return expectOneRow(tag)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE users SET refresh_token_hash = NULL, refresh_token_expires_at = NULL WHERE user_id = $1;`,
		userID)
	return mapPgError(err, "clear refresh token")
}

func (r *PgxUserRepository) LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE users SET auth_provider = $2, provider_user_id = $3, last_updated_at = $4 WHERE user_id = $1;`,
		userID, string(provider), providerUserID, time.Now().UTC())
	if err != nil {
		return mapPgError(err, "link provider")
	}
	return expectOneRow(tag)
}
