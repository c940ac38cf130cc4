package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/classtrack/attendance-backend/internal/domain"
)

type StudentRepository struct {
	db *sqlx.DB
}

func NewStudentRepo(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student domain.Student) (*domain.Student, error) {
	const query = `
        INSERT INTO student (id, name, email, password_hash, password_salt, section)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, email, password_hash, password_salt, section, created_at
    `
	row := r.db.QueryRowxContext(ctx, query,
		student.ID, student.Name, student.Email,
		student.PasswordHash, student.PasswordSalt, student.Section)

	var created domain.Student
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	const query = `
        SELECT id, name, email, password_hash, password_salt, section, created_at
        FROM student
        WHERE id = $1
    `
	var student domain.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) ListBySection(ctx context.Context, section string) ([]domain.Student, error) {
	const query = `
        SELECT id, name, email, password_hash, password_salt, section, created_at
        FROM student
        WHERE section = $1
        ORDER BY name
    `
	students := make([]domain.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query, section); err != nil {
		return nil, err
	}
	return students, nil
}
