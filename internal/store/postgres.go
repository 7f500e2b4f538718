package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabiandarga/employee-import/internal/employee"
)

const insertEmployeeSQL = `
	INSERT INTO employees (first_name, last_name, birthday, salary, education, married, kids)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

// Postgres stores employee records in a PostgreSQL table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store on an existing connection pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Insert stores one record and returns the generated id.
func (p *Postgres) Insert(ctx context.Context, rec employee.Record) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, insertEmployeeSQL,
		rec.FirstName, rec.LastName, rec.Birthday.Time,
		rec.Salary, string(rec.Education), rec.Married, rec.Kids,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// InsertMany stores all records in a single transaction. Either every
// record is committed or none is.
func (p *Postgres) InsertMany(ctx context.Context, recs []employee.Record) ([]int64, error) {
	if len(recs) == 0 {
		return []int64{}, nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make([]int64, 0, len(recs))
	for i, rec := range recs {
		var id int64
		err := tx.QueryRow(ctx, insertEmployeeSQL,
			rec.FirstName, rec.LastName, rec.Birthday.Time,
			rec.Salary, string(rec.Education), rec.Married, rec.Kids,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert employee %d of %d: %w", i+1, len(recs), err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return ids, nil
}

// Ping verifies database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
