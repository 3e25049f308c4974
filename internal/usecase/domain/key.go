// Package domain contains application usecases orchestrating domain logic by API key.
package domain

import (
	"context"

	"github.com/near/pagoda-console-sub002/internal/entities"
)

// GetKeys returns active API keys of a project the user manages.
func (u *Usecase) GetKeys(ctx context.Context, userID string, projectID int64) ([]entities.APIKey, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sel := entities.ByProjectID(projectID)
	if _, err := u.getActiveProject(ctx, sel, true); err != nil {
		return nil, err
	}
	if err := u.checkPermission(ctx, userID, sel); err != nil {
		return nil, err
	}
	return u.repo.ListKeys(ctx, projectID)
}

// RotateKey revokes the project's active keys and mints a new one.
func (u *Usecase) RotateKey(ctx context.Context, userID string, projectID int64) (*entities.APIKey, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sel := entities.ByProjectID(projectID)
	if _, err := u.getActiveProject(ctx, sel, true); err != nil {
		return nil, err
	}
	if err := u.checkPermission(ctx, userID, sel); err != nil {
		return nil, err
	}
	return u.repo.RotateKey(ctx, projectID)
}
