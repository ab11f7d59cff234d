package commands

//go:generate mockgen -source=experience.go -destination=../../../tests/mock/commands/experience.go -package=commandsmock

import (
	"context"
	"log/slog"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExperienceCommands interface {
	Create(ctx context.Context, details experience.Details) (*queries.ExperienceView, error)
}

type experienceCommandsImpl struct {
	repo    ExperienceRepository
	queries queries.ExperienceQueries
	cache   ListCacheInvalidator
	clock   clock.Clock
	logger  *slog.Logger
}

func NewExperienceCommands(
	repo ExperienceRepository,
	experienceQueries queries.ExperienceQueries,
	cache ListCacheInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) ExperienceCommands {
	return &experienceCommandsImpl{
		repo:    repo,
		queries: experienceQueries,
		cache:   cache,
		clock:   clk,
		logger:  logger,
	}
}

func (c *experienceCommandsImpl) Create(ctx context.Context, details experience.Details) (*queries.ExperienceView, error) {
	exp, err := experience.NewExperience(uuid.New(), details, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := c.repo.Create(ctx, exp); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create experience"), ErrStoreFailure)
	}

	if err := c.cache.Invalidate(ctx, CacheGroupExperiences); err != nil {
		c.logger.Warn("Failed to invalidate experience list cache", "error", err, "experience_id", exp.ID())
	}

	view, err := c.queries.GetByID(ctx, exp.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read created experience"), ErrStoreFailure)
	}
	return view, nil
}
