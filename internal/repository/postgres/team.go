package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/near/pagoda-console-sub002/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertUserQuery = `
INSERT INTO users(id) VALUES($1)
ON CONFLICT (id) DO UPDATE SET is_active = true
RETURNING id, is_active
`
	selectActiveTeamQuery = `
SELECT t.id, t.name, t.is_active
FROM team_members m
JOIN teams t ON t.id = m.team_id
WHERE m.user_id = $1 AND m.is_active AND t.is_active
ORDER BY t.id
LIMIT 1`
	insertTeamQuery   = `INSERT INTO teams(name) VALUES($1) RETURNING id`
	insertMemberQuery = `INSERT INTO team_members(team_id, user_id) VALUES($1, $2)`

	permissionByProjectQuery = `
SELECT EXISTS (
    SELECT 1
    FROM team_members m
    JOIN teams t ON t.id = m.team_id
    JOIN team_projects tp ON tp.team_id = t.id
    WHERE m.user_id = $1 AND m.is_active AND t.is_active AND tp.is_active
      AND tp.project_id = $2
)`
	permissionByEnvironmentQuery = `
SELECT EXISTS (
    SELECT 1
    FROM team_members m
    JOIN teams t ON t.id = m.team_id
    JOIN team_projects tp ON tp.team_id = t.id
    JOIN environments e ON e.project_id = tp.project_id
    WHERE m.user_id = $1 AND m.is_active AND t.is_active AND tp.is_active
      AND e.id = $2
)`
)

// ProvisionUser upserts the user and ensures a personal team with an active
// membership exists. Safe to call on every login.
func (p *Postgres) ProvisionUser(ctx context.Context, userID string) (*entities.User, *entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var usr entities.User
	if err := tx.QueryRow(ctx, upsertUserQuery, userID).Scan(&usr.ID, &usr.Active); err != nil {
		p.log.Errorw("failed to upsert user", "error", err, "user_id", userID)
		return nil, nil, fmt.Errorf("upsert user: %w", err)
	}

	var team entities.Team
	err = tx.QueryRow(ctx, selectActiveTeamQuery, userID).Scan(&team.ID, &team.Name, &team.Active)
	switch {
	case err == nil:
		// existing membership, nothing to create
	case errors.Is(err, pgx.ErrNoRows):
		if err := tx.QueryRow(ctx, insertTeamQuery, userID).Scan(&team.ID); err != nil {
			p.log.Errorw("failed to insert personal team", "error", err, "user_id", userID)
			return nil, nil, fmt.Errorf("insert team: %w", err)
		}
		if _, err := tx.Exec(ctx, insertMemberQuery, team.ID, userID); err != nil {
			p.log.Errorw("failed to insert membership", "error", err, "user_id", userID)
			return nil, nil, fmt.Errorf("insert membership: %w", err)
		}
		team.Name = userID
		team.Active = true
	default:
		return nil, nil, fmt.Errorf("select team: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	p.log.Infow("user provisioned", "user_id", userID, "team_id", team.ID)
	return &usr, &team, nil
}

// ActiveTeamID returns the first active team the user belongs to.
func (p *Postgres) ActiveTeamID(ctx context.Context, userID string) (int64, bool, error) {
	var teamID int64
	var name string
	var active bool
	err := p.db.QueryRow(ctx, selectActiveTeamQuery, userID).Scan(&teamID, &name, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select active team: %w", err)
	}
	return teamID, true, nil
}

// HasProjectPermission reports whether the user belongs to an active team with
// an active link to the selected project. The project-id selector filters the
// join table directly; the environment selector joins through environments.
func (p *Postgres) HasProjectPermission(ctx context.Context, userID string, sel entities.ProjectSelector) (bool, error) {
	var (
		query string
		arg   int64
	)
	switch {
	case sel.ProjectID != nil:
		query, arg = permissionByProjectQuery, *sel.ProjectID
	case sel.EnvironmentID != nil:
		query, arg = permissionByEnvironmentQuery, *sel.EnvironmentID
	default:
		return false, fmt.Errorf("%w: empty project selector", entities.ErrInvalidArgument)
	}

	var allowed bool
	if err := p.db.QueryRow(ctx, query, userID, arg).Scan(&allowed); err != nil {
		p.log.Errorw("failed to check permission", "error", err, "user_id", userID)
		return false, fmt.Errorf("check permission: %w", err)
	}
	return allowed, nil
}
