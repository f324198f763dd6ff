package services

import (
	"errors"

	"news-cms/models"

	"gorm.io/gorm"
)

// notFoundOr turns a missing-record error into a 404 with message and passes
// everything else through.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFound(message)
	}
	return err
}

// conflictOr is notFoundOr for unique-index violations.
func conflictOr(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewConflict(message)
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
