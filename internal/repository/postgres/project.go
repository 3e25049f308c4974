package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/near/pagoda-console-sub002/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertProjectQuery     = `INSERT INTO projects(name, net) VALUES($1, $2) RETURNING id, created_at`
	insertTeamProjectQuery = `INSERT INTO team_projects(team_id, project_id) VALUES($1, $2)`
	insertEnvironmentQuery = `INSERT INTO environments(project_id, name, net) VALUES($1, $2, $3) RETURNING id`

	selectProjectQuery = `
SELECT p.id, p.name, p.net, p.is_active, p.created_at
FROM projects p
WHERE p.id = $1`
	selectProjectLiteQuery = `SELECT p.id, p.is_active FROM projects p WHERE p.id = $1`
	selectProjectByEnvQuery = `
SELECT p.id, p.name, p.net, p.is_active, p.created_at
FROM environments e
JOIN projects p ON p.id = e.project_id
WHERE e.id = $1`
	selectProjectLiteByEnvQuery = `
SELECT p.id, p.is_active
FROM environments e
JOIN projects p ON p.id = e.project_id
WHERE e.id = $1`

	deactivateProjectQuery = `UPDATE projects SET is_active = false WHERE id = $1`

	listProjectsQuery = `
SELECT DISTINCT p.id, p.name, p.net, p.is_active, p.created_at
FROM team_members m
JOIN teams t ON t.id = m.team_id
JOIN team_projects tp ON tp.team_id = t.id
JOIN projects p ON p.id = tp.project_id
WHERE m.user_id = $1 AND m.is_active AND t.is_active AND tp.is_active AND p.is_active
ORDER BY p.id`

	selectEnvironmentQuery = `
SELECT id, project_id, name, net, is_active FROM environments WHERE id = $1`
	listEnvironmentsQuery = `
SELECT id, project_id, name, net, is_active
FROM environments
WHERE project_id = $1 AND is_active
ORDER BY id`
)

// CreateProject inserts the project, its team link and a default environment
// carrying the project's net, all in one transaction.
func (p *Postgres) CreateProject(ctx context.Context, teamID int64, name string, net entities.Net) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	proj := entities.Project{Name: name, Net: net, Active: true}
	var createdAt time.Time
	if err := tx.QueryRow(ctx, insertProjectQuery, name, net).Scan(&proj.ID, &createdAt); err != nil {
		p.log.Errorw("failed to insert project", "error", err, "name", name)
		return nil, fmt.Errorf("insert project: %w", err)
	}
	proj.CreatedAt = &createdAt

	if _, err := tx.Exec(ctx, insertTeamProjectQuery, teamID, proj.ID); err != nil {
		p.log.Errorw("failed to link project to team", "error", err, "project_id", proj.ID)
		return nil, fmt.Errorf("insert team project: %w", err)
	}

	var envID int64
	if err := tx.QueryRow(ctx, insertEnvironmentQuery, proj.ID, "Default", net).Scan(&envID); err != nil {
		p.log.Errorw("failed to insert default environment", "error", err, "project_id", proj.ID)
		return nil, fmt.Errorf("insert environment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project created", "project_id", proj.ID, "team_id", teamID, "net", net)
	return &proj, nil
}

// GetProject fetches a project by selector. With lite=true only id and the
// active flag are read. Missing rows map to ErrBadProject.
func (p *Postgres) GetProject(ctx context.Context, sel entities.ProjectSelector, lite bool) (*entities.Project, error) {
	var (
		query string
		arg   int64
	)
	switch {
	case sel.ProjectID != nil:
		arg = *sel.ProjectID
		if lite {
			query = selectProjectLiteQuery
		} else {
			query = selectProjectQuery
		}
	case sel.EnvironmentID != nil:
		arg = *sel.EnvironmentID
		if lite {
			query = selectProjectLiteByEnvQuery
		} else {
			query = selectProjectByEnvQuery
		}
	default:
		return nil, fmt.Errorf("%w: empty project selector", entities.ErrInvalidArgument)
	}

	var proj entities.Project
	var createdAt time.Time
	var err error
	if lite {
		err = p.db.QueryRow(ctx, query, arg).Scan(&proj.ID, &proj.Active)
	} else {
		err = p.db.QueryRow(ctx, query, arg).Scan(&proj.ID, &proj.Name, &proj.Net, &proj.Active, &createdAt)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBadProject
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	if !lite {
		proj.CreatedAt = &createdAt
	}
	return &proj, nil
}

// SoftDeleteProject flips the active flag off. Missing rows map to ErrBadProject.
func (p *Postgres) SoftDeleteProject(ctx context.Context, projectID int64) error {
	tag, err := p.db.Exec(ctx, deactivateProjectQuery, projectID)
	if err != nil {
		p.log.Errorw("failed to deactivate project", "error", err, "project_id", projectID)
		return fmt.Errorf("deactivate project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrBadProject
	}
	p.log.Infow("project deactivated", "project_id", projectID)
	return nil
}

// ListProjects returns active projects reachable through the user's active
// memberships and active team-project links.
func (p *Postgres) ListProjects(ctx context.Context, userID string) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var proj entities.Project
		var createdAt time.Time
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.Net, &proj.Active, &createdAt); err != nil {
			p.log.Errorw("failed to scan project", "error", err, "user_id", userID)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		proj.CreatedAt = &createdAt
		projects = append(projects, proj)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate projects", "error", err, "user_id", userID)
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// GetEnvironment fetches an environment by id. Missing rows map to ErrBadEnvironment.
func (p *Postgres) GetEnvironment(ctx context.Context, environmentID int64) (*entities.Environment, error) {
	var env entities.Environment
	err := p.db.QueryRow(ctx, selectEnvironmentQuery, environmentID).
		Scan(&env.ID, &env.ProjectID, &env.Name, &env.Net, &env.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBadEnvironment
		}
		return nil, fmt.Errorf("get environment: %w", err)
	}
	return &env, nil
}

// ListEnvironments returns active environments of a project.
func (p *Postgres) ListEnvironments(ctx context.Context, projectID int64) ([]entities.Environment, error) {
	rows, err := p.db.Query(ctx, listEnvironmentsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list environments: %w", err)
	}
	defer rows.Close()

	envs := make([]entities.Environment, 0)
	for rows.Next() {
		var env entities.Environment
		if err := rows.Scan(&env.ID, &env.ProjectID, &env.Name, &env.Net, &env.Active); err != nil {
			return nil, fmt.Errorf("scan environment: %w", err)
		}
		envs = append(envs, env)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate environments: %w", err)
	}

	return envs, nil
}
