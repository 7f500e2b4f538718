// Package store persists validated employee records.
package store

import (
	"context"

	"github.com/fabiandarga/employee-import/internal/employee"
)

// Store is the persistence boundary for employee records.
// Implementations assign the identifier on insert; records carry none.
type Store interface {
	// Insert stores one record and returns its assigned identifier.
	Insert(ctx context.Context, rec employee.Record) (int64, error)

	// InsertMany stores records in input order and returns their
	// identifiers in the same order. All or nothing: a failure leaves
	// no records behind.
	InsertMany(ctx context.Context, recs []employee.Record) ([]int64, error)

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}
