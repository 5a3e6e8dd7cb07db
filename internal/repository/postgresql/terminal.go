package postgresql

import (
	"context"
	"fmt"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
)

type terminalRepository struct {
	db *database.DB
}

// Append implements attendance.TerminalRepository.
func (r *terminalRepository) Append(ctx context.Context, line string) error {
	if _, err := r.db.Exec(ctx, `INSERT INTO terminal_log (line) VALUES ($1)`, line); err != nil {
		return fmt.Errorf("failed to append terminal line: %w", err)
	}
	return nil
}

// Tail implements attendance.TerminalRepository.
func (r *terminalRepository) Tail(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT line FROM (
			SELECT id, line FROM terminal_log ORDER BY id DESC LIMIT $1
		) recent
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to tail terminal log: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan terminal line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func NewTerminalRepository(db *database.DB) attendance.TerminalRepository {
	return &terminalRepository{db: db}
}
