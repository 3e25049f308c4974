// Package domain contains application usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/near/pagoda-console-sub002/internal/entities"
)

// CreateProject resolves the user's active team and creates a project owned
// by it. A user without an active team is a provisioning failure, not a
// domain-rule violation, so the error carries no sentinel.
func (u *Usecase) CreateProject(ctx context.Context, userID, name string, net entities.Net) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if net == "" {
		net = entities.NetTest
	}
	if !entities.ValidNet(net) {
		return nil, fmt.Errorf("%w: unknown net %q", entities.ErrInvalidArgument, net)
	}

	teamID, found, err := u.repo.ActiveTeamID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve team for user %s: %w", userID, err)
	}
	if !found {
		return nil, fmt.Errorf("no active team for user %s", userID)
	}

	proj, err := u.repo.CreateProject(ctx, teamID, name, net)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	u.log.Infow("project created", "project_id", proj.ID, "user_id", userID)
	return proj, nil
}

// DeleteProject soft-deletes a project after asserting it is active and the
// user may manage it. Deletion is terminal; a second call fails the
// active-project assertion.
func (u *Usecase) DeleteProject(ctx context.Context, userID string, projectID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sel := entities.ByProjectID(projectID)
	if _, err := u.getActiveProject(ctx, sel, true); err != nil {
		return err
	}
	if err := u.checkPermission(ctx, userID, sel); err != nil {
		return err
	}
	return u.repo.SoftDeleteProject(ctx, projectID)
}

// ListProjects returns active projects reachable through the user's active
// memberships. The query itself is the filter; no separate permission check.
func (u *Usecase) ListProjects(ctx context.Context, userID string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListProjects(ctx, userID)
}

// GetEnvironments returns active environments of a project the user manages.
func (u *Usecase) GetEnvironments(ctx context.Context, userID string, projectID int64) ([]entities.Environment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sel := entities.ByProjectID(projectID)
	if _, err := u.getActiveProject(ctx, sel, true); err != nil {
		return nil, err
	}
	if err := u.checkPermission(ctx, userID, sel); err != nil {
		return nil, err
	}
	return u.repo.ListEnvironments(ctx, projectID)
}
