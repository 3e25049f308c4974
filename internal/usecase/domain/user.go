// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/near/pagoda-console-sub002/internal/entities"
)

// ProvisionUser upserts the caller and their personal team. Called on first
// login; idempotent on repeats.
func (u *Usecase) ProvisionUser(ctx context.Context, userID string) (*entities.User, *entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}
	return u.repo.ProvisionUser(ctx, userID)
}
