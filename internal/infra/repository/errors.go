package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/construction-site/internal/partial"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrEmptyUpdate = partial.ErrEmpty
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, partial.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// forUpdate adds row locking on dialects that support it.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
