package domain

import (
	"context"
	"time"

	"github.com/near/pagoda-console-sub002/internal/entities"
	"github.com/near/pagoda-console-sub002/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// checkPermission guards every mutating or sensitive-read operation: the user
// must hold an active membership on an active team with an active link to the
// selected project.
func (u *Usecase) checkPermission(ctx context.Context, userID string, sel entities.ProjectSelector) error {
	allowed, err := u.repo.HasProjectPermission(ctx, userID, sel)
	if err != nil {
		return err
	}
	if !allowed {
		u.log.Warnw("permission denied", "user_id", userID)
		return entities.ErrPermissionDenied
	}
	return nil
}

// getActiveProject asserts the selected project exists and is active. With
// lite=true only id and the active flag are fetched.
func (u *Usecase) getActiveProject(ctx context.Context, sel entities.ProjectSelector, lite bool) (*entities.Project, error) {
	proj, err := u.repo.GetProject(ctx, sel, lite)
	if err != nil {
		return nil, err
	}
	if !proj.Active {
		return nil, entities.ErrBadProject
	}
	return proj, nil
}
