package memstore

import (
	"context"
	"log/slog"

	"experience-booking/internal/domain/user"
	"experience-booking/internal/infra"
	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// UserStore treats usernames case-insensitively for uniqueness.
type UserStore struct {
	db     *DB
	logger *slog.Logger
}

func NewUserStore(db *DB, logger *slog.Logger) *UserStore {
	return &UserStore{db: db, logger: logger}
}

func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	if err := checkCtx(ctx, s.logger); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	key := usernameKey(u.Username().String())
	if _, ok := s.db.usernames[key]; ok {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "username already exists", nil)
	}
	if _, ok := s.db.users[u.ID()]; ok {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "user id already exists", nil)
	}

	s.db.users[u.ID()] = &userRow{
		ID:           u.ID(),
		Username:     u.Username().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
	s.db.usernames[key] = u.ID()
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	row, ok := s.db.users[id]
	s.db.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return s.toView(row)
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, error) {
	if err := checkCtx(ctx, s.logger); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	var row *userRow
	if id, ok := s.db.usernames[usernameKey(username)]; ok {
		row = s.db.users[id]
	}
	s.db.mu.RUnlock()
	if row == nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", nil)
	}
	return s.toView(row)
}

// UserView has no PasswordHash field, so the hash never leaves the store.
func (s *UserStore) toView(row *userRow) (*queries.UserView, error) {
	var view queries.UserView
	if err := copier.Copy(&view, row); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "copy user row", err)
	}
	return &view, nil
}
