package repository

import (
	"context"
	"fmt"

	"websubmit/portal/internal/domain"

	"github.com/jackc/pgx/v5"
)

// RoleRepository resolves access-control roles to their members
type RoleRepository interface {
	RoleUsers(ctx context.Context, role string) ([]domain.RoleUser, error)
}

type roleRepository struct {
	db Querier
}

func NewRoleRepository(db Querier) RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// RoleUsers returns the members of a role whose membership has not expired.
// An unknown role has no members.
func (r *roleRepository) RoleUsers(ctx context.Context, role string) ([]domain.RoleUser, error) {
	query := `
	SELECT u.id, u.email FROM "user" u
	JOIN user_accROLE ur ON ur.id_user = u.id
	JOIN accROLE r ON r.id = ur.id_accROLE
	WHERE r.name = $1 AND ur.expiration >= NOW()
	ORDER BY u.id`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query users of role %s: %w", role, err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RoleUser, error) {
		var u domain.RoleUser
		err := row.Scan(&u.ID, &u.Email)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read users of role %s: %w", role, err)
	}

	return users, nil
}
