// internal/repository/repository.go
package repository

import (
	"log/slog"

	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// Pagination describes one page of a result set.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

// NewPagination clamps page into range and derives the page count.
func NewPagination(total int64, page, perPage int) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	return Pagination{
		CurrentPage: page,
		LastPage:    last,
		PerPage:     perPage,
		Total:       total,
	}
}

// Offset is the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}

// NormalizeOrder maps any requested sort direction onto asc/desc. Unknown
// values fall back to ascending, same as an absent parameter.
func NormalizeOrder(order string) string {
	if order == "desc" {
		return "desc"
	}
	return "asc"
}
