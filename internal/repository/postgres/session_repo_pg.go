package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/classtrack/attendance-backend/internal/domain"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepo(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session domain.Session) (*domain.Session, error) {
	const query = `
        INSERT INTO session (token, name, section, created_by, created_at, expires_at, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, token, name, section, created_by, created_at, expires_at, active
    `
	row := r.db.QueryRowxContext(ctx, query,
		session.Token, session.Name, session.Section, session.CreatedBy,
		session.CreatedAt, session.ExpiresAt, session.Active)

	var created domain.Session
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	const query = `
        SELECT id, token, name, section, created_by, created_at, expires_at, active
        FROM session
        WHERE token = $1
    `
	var session domain.Session
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	const query = `
        SELECT id, token, name, section, created_by, created_at, expires_at, active
        FROM session
        ORDER BY created_at DESC
    `
	sessions := make([]domain.Session, 0)
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		return nil, err
	}
	return sessions, nil
}
