//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"
	commandsmock "experience-booking/tests/mock/commands"
	queriesmock "experience-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBookings    *commandsmock.MockBookingRepository
	mockExperiences *commandsmock.MockExperienceRepository
	mockQueries     *queriesmock.MockBookingQueries
	mockCache       *commandsmock.MockListCacheInvalidator
	mockPublisher   *commandsmock.MockBookingEventPublisher
	cmds            commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockExperiences = commandsmock.NewMockExperienceRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCache = commandsmock.NewMockListCacheInvalidator(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockBookingEventPublisher(s.mockCtrl)

	services := &booking.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: booking.NewPerGuestPriceCalculator(),
	}
	s.cmds = commands.NewBookingCommands(s.mockBookings, s.mockExperiences, s.mockQueries,
		s.mockCache, s.mockPublisher, services, discardLogger())
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreate() {
	b := builder.NewBookingBuilder()
	snapshot := &commands.ExperienceSnapshot{ID: b.ExperienceID, PriceCents: 189900}

	s.Run("computes the total and reads the booking back", func() {
		var stored *booking.Booking
		var event commands.BookingCreatedEvent

		gomock.InOrder(
			s.mockExperiences.EXPECT().FindSnapshotByID(gomock.Any(), b.ExperienceID).Return(snapshot, nil),
			s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, bk *booking.Booking) error {
					stored = bk
					return nil
				}),
			s.mockCache.EXPECT().Invalidate(gomock.Any(), commands.CacheGroupBookings).Return(nil),
			s.mockPublisher.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e commands.BookingCreatedEvent) error {
					event = e
					return nil
				}),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
					v := b.BuildView()
					v.ID = id
					return v, nil
				}),
		)

		view, err := s.cmds.Create(context.Background(), b.BuildInput())
		s.Require().NoError(err)
		s.Require().NotNil(stored)

		s.Equal(int64(569700), stored.TotalAmount().Cents())
		s.Equal(booking.StatusPending, stored.Status())
		s.Equal(now, stored.CreatedAt())
		s.Equal(stored.ID(), view.ID)
		s.Equal(stored.ID(), event.BookingID)
		s.Equal(int64(569700), event.TotalAmountCents)
	})

	s.Run("validation collects every bad field and touches nothing", func() {
		input := b.BuildInput()
		input.CustomerEmail = "nope"
		input.Guests = 0
		input.BookingDate = time.Time{}
		input.Status = "paid"

		_, err := s.cmds.Create(context.Background(), input)
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrValidation))

		var verr *errs.ValidationError
		s.Require().ErrorAs(err, &verr)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		s.Equal([]string{"customerEmail", "bookingDate", "guests", "status"}, fields)
	})

	s.Run("guests above the maximum are rejected before lookup", func() {
		input := b.BuildInput()
		input.Guests = 100000000000000

		_, err := s.cmds.Create(context.Background(), input)
		s.True(errs.Is(err, errs.ErrValidation))

		var verr *errs.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Require().Len(verr.Fields, 1)
		s.Equal("guests", verr.Fields[0].Field)
		s.Equal(booking.ErrTooManyGuests.Error(), verr.Fields[0].Message)
	})

	s.Run("a total past the money range is a guests error, never stored", func() {
		huge := &commands.ExperienceSnapshot{ID: b.ExperienceID, PriceCents: math.MaxInt64 / 2}
		s.mockExperiences.EXPECT().FindSnapshotByID(gomock.Any(), b.ExperienceID).Return(huge, nil)

		_, err := s.cmds.Create(context.Background(), b.BuildInput())
		s.True(errs.Is(err, errs.ErrValidation))

		var verr *errs.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Require().Len(verr.Fields, 1)
		s.Equal("guests", verr.Fields[0].Field)
	})

	s.Run("unknown experience", func() {
		s.mockExperiences.EXPECT().FindSnapshotByID(gomock.Any(), b.ExperienceID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.cmds.Create(context.Background(), b.BuildInput())
		s.ErrorIs(err, commands.ErrExperienceNotFound)
	})

	s.Run("store failure on write", func() {
		s.mockExperiences.EXPECT().FindSnapshotByID(gomock.Any(), b.ExperienceID).Return(snapshot, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := s.cmds.Create(context.Background(), b.BuildInput())
		s.True(errs.Is(err, commands.ErrStoreFailure))
	})

	s.Run("cache and broker failures do not fail the booking", func() {
		s.mockExperiences.EXPECT().FindSnapshotByID(gomock.Any(), b.ExperienceID).Return(snapshot, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockCache.EXPECT().Invalidate(gomock.Any(), commands.CacheGroupBookings).Return(assert.AnError)
		s.mockPublisher.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(assert.AnError)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(b.BuildView(), nil)

		view, err := s.cmds.Create(context.Background(), b.BuildInput())
		s.NoError(err)
		s.NotNil(view)
	})
}

func TestExperienceCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockExperienceRepository(ctrl)
	q := queriesmock.NewMockExperienceQueries(ctrl)
	cache := commandsmock.NewMockListCacheInvalidator(ctrl)
	cmds := commands.NewExperienceCommands(repo, q, cache, clock.NewMockClock(now), discardLogger())

	t.Run("creates and invalidates the catalog cache", func(t *testing.T) {
		want := builder.NewExperienceBuilder().BuildView()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().Invalidate(gomock.Any(), commands.CacheGroupExperiences).Return(nil)
		q.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(want, nil)

		got, err := cmds.Create(context.Background(), builder.NewExperienceBuilder().BuildDetails())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid details never reach the store", func(t *testing.T) {
		_, err := cmds.Create(context.Background(), builder.NewExperienceBuilder().WithTitle("").BuildDetails())
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
