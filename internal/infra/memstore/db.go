// Package memstore is the in-memory repository behind the catalog and
// booking use cases. Nothing survives a restart.
package memstore

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"experience-booking/internal/infra"

	"github.com/google/uuid"
)

// DB owns every collection. Stores share one DB and its lock, since gin
// serves requests on many goroutines and Go maps are not safe for that.
type DB struct {
	mu          sync.RWMutex
	seq         int64
	experiences map[uuid.UUID]*experienceRow
	bookings    map[uuid.UUID]*bookingRow
	users       map[uuid.UUID]*userRow
	usernames   map[string]uuid.UUID
}

func NewDB() *DB {
	return &DB{
		experiences: make(map[uuid.UUID]*experienceRow),
		bookings:    make(map[uuid.UUID]*bookingRow),
		users:       make(map[uuid.UUID]*userRow),
		usernames:   make(map[string]uuid.UUID),
	}
}

// nextSeq must be called with mu held for writing.
func (db *DB) nextSeq() int64 {
	db.seq++
	return db.seq
}

// Reset drops every record. Used by tests between cases.
func (db *DB) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()
	clear(db.experiences)
	clear(db.bookings)
	clear(db.users)
	clear(db.usernames)
}

type experienceRow struct {
	ID                 uuid.UUID
	Title              string
	Location           string
	PriceCents         int64
	OriginalPriceCents *int64
	RatingTenths       int
	ReviewCount        int
	Duration           string
	GroupSize          string
	Category           string
	Image              string
	Featured           bool
	Description        *string
	Inclusions         []string
	Exclusions         []string
	Highlights         []string
	CreatedAt          time.Time
	seq                int64
}

type bookingRow struct {
	ID               uuid.UUID
	ExperienceID     uuid.UUID
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	BookingDate      time.Time
	Guests           int
	TotalAmountCents int64
	SpecialRequests  *string
	Status           string
	CreatedAt        time.Time
	seq              int64
}

type userRow struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// newestFirst orders by creation time descending; insertion order breaks ties.
func newestFirst(aAt, bAt time.Time, aSeq, bSeq int64) int {
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}
	switch {
	case aSeq > bSeq:
		return -1
	case aSeq < bSeq:
		return 1
	default:
		return 0
	}
}

func usernameKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checkCtx(ctx context.Context, logger *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(logger, infra.KindStoreFailure, "context done", err)
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
