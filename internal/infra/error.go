package infra

import (
	"context"
	"errors"
	"log/slog"

	"experience-booking/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindStoreFailure RepositoryErrorKind = "STORE_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a store error. Misses are expected and logged at
// debug; everything else is logged at error.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	level := slog.LevelError
	if kind == KindNotFound || kind == KindDuplicateKey {
		level = slog.LevelDebug
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
