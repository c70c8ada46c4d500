package service

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrDuplicateFile: the platform file id is already stored, by any owner.
	ErrDuplicateFile = errors.New("file already stored")
	ErrNotFound      = errors.New("not found")
	// ErrExpired: the share link existed but its lifetime has passed.
	ErrExpired      = errors.New("share link expired")
	ErrUnauthorized = errors.New("not owned by caller")
	// ErrStorageFault wraps any failure of the underlying store.
	ErrStorageFault = errors.New("storage fault")
	ErrInvalidInput = errors.New("invalid input")
	ErrFileTooLarge = errors.New("file too large")
	// ErrDuplicateBookmark: the owner already saved this URL.
	ErrDuplicateBookmark = errors.New("bookmark already exists")
)

// IsAccessDenied reports whether a share resolution was refused, for either reason.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrExpired)
}

// storeFault counts and logs a store failure and wraps it in ErrStorageFault.
func storeFault(log *slog.Logger, op string, err error) error {
	storageFaultsTotal.WithLabelValues(op).Inc()
	log.Error("store_fault", slog.String("op", op), slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w: %v", op, ErrStorageFault, err)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
