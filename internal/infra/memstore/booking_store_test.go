//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/memstore"
	"experience-booking/internal/usecase/queries"
	"experience-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create then read back", func(t *testing.T) {
		store := memstore.NewBookingStore(memstore.NewDB(), discardLogger())
		b := builder.NewBookingBuilder().WithSpecialRequests("window seat")
		bk := b.MustBuildDomain()
		require.NoError(t, store.Create(ctx, bk))

		view, err := store.FindByID(ctx, bk.ID())
		require.NoError(t, err)

		want := b.BuildView()
		want.ID = bk.ID()
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("list newest first and by experience", func(t *testing.T) {
		store := memstore.NewBookingStore(memstore.NewDB(), discardLogger())
		expA, expB := uuid.New(), uuid.New()

		var ids []uuid.UUID
		for i, expID := range []uuid.UUID{expA, expB, expA} {
			bk := builder.NewBookingBuilder().WithExperienceID(expID).With(func(b *builder.BookingBuilder) {
				b.CreatedAt = base.Add(time.Duration(i) * time.Second)
			}).MustBuildDomain()
			require.NoError(t, store.Create(ctx, bk))
			ids = append(ids, bk.ID())
		}

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ids[2], ids[1], ids[0]}, bookingIDs(all))

		forA, err := store.FindByExperienceID(ctx, expA)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ids[2], ids[0]}, bookingIDs(forA))

		none, err := store.FindByExperienceID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("missing id", func(t *testing.T) {
		store := memstore.NewBookingStore(memstore.NewDB(), discardLogger())
		_, err := store.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("concurrent writers do not lose records", func(t *testing.T) {
		db := memstore.NewDB()
		store := memstore.NewBookingStore(db, discardLogger())

		const writers = 50
		var wg sync.WaitGroup
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.Create(ctx, builder.NewBookingBuilder().MustBuildDomain()))
			}()
		}
		wg.Wait()

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, writers)

		db.Reset()
		all, err = store.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func bookingIDs(views []*queries.BookingView) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}
