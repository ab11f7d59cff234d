package memstore

import (
	"context"
	"log/slog"
	"slices"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ExperienceStore struct {
	db     *DB
	logger *slog.Logger
}

func NewExperienceStore(db *DB, logger *slog.Logger) *ExperienceStore {
	return &ExperienceStore{db: db, logger: logger}
}

func (s *ExperienceStore) Create(ctx context.Context, exp *experience.Experience) error {
	if err := checkCtx(ctx, s.logger); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.experiences[exp.ID()]; ok {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "experience id already exists", nil)
	}

	row := &experienceRow{
		ID:           exp.ID(),
		Title:        exp.Title(),
		Location:     exp.Location(),
		PriceCents:   exp.Price().Cents(),
		RatingTenths: exp.Rating().Tenths(),
		ReviewCount:  exp.ReviewCount(),
		Duration:     exp.Duration(),
		GroupSize:    exp.GroupSize(),
		Category:     exp.Category(),
		Image:        exp.Image(),
		Featured:     exp.Featured(),
		Description:  clonePtr(exp.Description()),
		Inclusions:   exp.Inclusions(),
		Exclusions:   exp.Exclusions(),
		Highlights:   exp.Highlights(),
		CreatedAt:    exp.CreatedAt(),
		seq:          s.db.nextSeq(),
	}
	if op := exp.OriginalPrice(); op != nil {
		cents := op.Cents()
		row.OriginalPriceCents = &cents
	}
	s.db.experiences[row.ID] = row
	return nil
}

func (s *ExperienceStore) FindAll(ctx context.Context, filter experience.Filter) ([]*queries.ExperienceView, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	rows := make([]*experienceRow, 0, len(s.db.experiences))
	for _, row := range s.db.experiences {
		if filter.IsEmpty() || filter.Matches(row.toDomain()) {
			rows = append(rows, row)
		}
	}
	s.db.mu.RUnlock()

	slices.SortFunc(rows, func(a, b *experienceRow) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.seq, b.seq)
	})

	views := make([]*queries.ExperienceView, 0, len(rows))
	for _, row := range rows {
		view, err := s.toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ExperienceStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	row, ok := s.db.experiences[id]
	s.db.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "experience not found", nil)
	}
	return s.toView(row)
}

func (s *ExperienceStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*commands.ExperienceSnapshot, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	row, ok := s.db.experiences[id]
	s.db.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "experience not found", nil)
	}
	return &commands.ExperienceSnapshot{ID: row.ID, PriceCents: row.PriceCents}, nil
}

// Rows are never mutated after insert, so reading one outside the lock is safe.
func (s *ExperienceStore) toView(row *experienceRow) (*queries.ExperienceView, error) {
	var view queries.ExperienceView
	if err := copier.Copy(&view, row); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "copy experience row", err)
	}
	view.OriginalPriceCents = clonePtr(row.OriginalPriceCents)
	view.Description = clonePtr(row.Description)
	view.Inclusions = cloneStrings(row.Inclusions)
	view.Exclusions = cloneStrings(row.Exclusions)
	view.Highlights = cloneStrings(row.Highlights)
	return &view, nil
}

func (r *experienceRow) toDomain() *experience.Experience {
	d := experience.Details{
		Title:       r.Title,
		Location:    r.Location,
		Price:       money.FromCents(r.PriceCents),
		Rating:      experience.Rating(r.RatingTenths),
		ReviewCount: r.ReviewCount,
		Duration:    r.Duration,
		GroupSize:   r.GroupSize,
		Category:    r.Category,
		Image:       r.Image,
		Featured:    r.Featured,
		Description: r.Description,
		Inclusions:  r.Inclusions,
		Exclusions:  r.Exclusions,
		Highlights:  r.Highlights,
	}
	if r.OriginalPriceCents != nil {
		op := money.FromCents(*r.OriginalPriceCents)
		d.OriginalPrice = &op
	}
	return experience.ReconstructExperience(r.ID, d, r.CreatedAt)
}
