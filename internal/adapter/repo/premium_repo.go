package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"tiergate/internal/domain"
	"tiergate/internal/infra"
	"tiergate/internal/sqlinline"
)

// UserRecord is the persisted user row the service cares about.
type UserRecord struct {
	ID      string
	Email   string
	Premium bool
}

// PremiumStatusRepo reads and writes premium entitlements in PostgreSQL. It
// implements domain.PremiumFetcher for the resolver.
type PremiumStatusRepo struct {
	sql infra.SQLExecutor
}

// NewPremiumStatusRepo creates a repo on top of the given SQL executor.
func NewPremiumStatusRepo(sql infra.SQLExecutor) *PremiumStatusRepo {
	return &PremiumStatusRepo{sql: sql}
}

// FetchPremiumStatus returns whether the user currently holds premium access.
// Unknown users yield domain.ErrNotFound.
func (r *PremiumStatusRepo) FetchPremiumStatus(ctx context.Context, userID string) (bool, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectPremiumByUserID, userID)
	var premium bool
	if err := row.Scan(&premium); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	return premium, nil
}

// GetByID loads a user row by id.
func (r *PremiumStatusRepo) GetByID(ctx context.Context, userID string) (*UserRecord, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, userID))
}

// GetByEmail loads a user row by email, case-insensitively.
func (r *PremiumStatusRepo) GetByEmail(ctx context.Context, email string) (*UserRecord, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, email))
}

// SetPremium updates a user's premium flag and returns the updated row.
func (r *PremiumStatusRepo) SetPremium(ctx context.Context, userID string, premium bool) (*UserRecord, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QUpdateUserPremium, userID, premium))
}

func (r *PremiumStatusRepo) scanUser(row pgx.Row) (*UserRecord, error) {
	var u UserRecord
	if err := row.Scan(&u.ID, &u.Email, &u.Premium); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
