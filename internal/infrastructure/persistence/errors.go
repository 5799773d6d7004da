package persistence

import (
	"errors"

	"gorm.io/gorm"
)

// translateNotFound maps GORM's record-not-found to the given domain error
func translateNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// isDuplicateKey requires gorm.Config.TranslateError
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
