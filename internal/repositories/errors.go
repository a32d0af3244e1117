package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by every repository so callers can map them to
// HTTP statuses with errors.Is instead of string matching.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate value")
)

// translate maps GORM errors to the repository sentinels. Requires the
// gorm.Config{TranslateError: true} option so driver-specific unique
// violations arrive as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
