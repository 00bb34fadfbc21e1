package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNoTransaction is returned when a repository is requested outside
// an active Do scope. The store handle only hands out repositories
// bound to a running transaction.
var ErrNoTransaction = errors.New("repository access outside transaction scope")

// mapError translates storage errors onto domain sentinels so callers
// never have to import gorm.
func mapError(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
