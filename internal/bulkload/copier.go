package bulkload

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresCopier loads chunks through COPY FROM STDIN. Each chunk runs in
// its own transaction so a failed chunk leaves nothing behind.
type PostgresCopier struct {
	db    *sql.DB
	table string
}

// NewPostgresCopier creates a copier targeting the transactions table.
func NewPostgresCopier(db *sql.DB) *PostgresCopier {
	return &PostgresCopier{
		db:    db,
		table: "transactions",
	}
}

func (c *PostgresCopier) CopyChunk(rows [][]interface{}) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(pq.CopyIn(c.table, TargetColumns...))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare copy statement: %w", err)
	}

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("failed to buffer row: %w", err)
		}
	}

	// Flush the buffered rows to the server
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		tx.Rollback()
		return fmt.Errorf("failed to flush copy: %w", err)
	}

	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to close copy statement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunk: %w", err)
	}

	return nil
}
