package databases

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when a lookup matches no document or row
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a unique index or constraint
	ErrDuplicate = errors.New("duplicate key")
)

// translate maps driver errors onto the package sentinels and adds context
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
