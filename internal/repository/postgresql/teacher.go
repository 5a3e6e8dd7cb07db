package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teacherRepository struct {
	db *database.DB
}

// Create implements teacher.TeacherRepository.
func (r *teacherRepository) Create(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	query := `
		INSERT INTO teachers (uid, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, t.UID, t.Name).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return t, nil
}

// GetByUID implements teacher.TeacherRepository.
func (r *teacherRepository) GetByUID(ctx context.Context, uid string) (teacher.Teacher, error) {
	query := `
		SELECT uid, name, created_at, updated_at
		FROM teachers
		WHERE uid = $1
	`

	var t teacher.Teacher
	err := r.db.QueryRow(ctx, query, uid).Scan(&t.UID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	return t, nil
}

// List implements teacher.TeacherRepository.
func (r *teacherRepository) List(ctx context.Context) ([]teacher.Teacher, error) {
	query := `
		SELECT uid, name, created_at, updated_at
		FROM teachers
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		if err := rows.Scan(&t.UID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan teacher row: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

// Delete implements teacher.TeacherRepository.
func (r *teacherRepository) Delete(ctx context.Context, uid string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}
	return nil
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepository{db: db}
}
