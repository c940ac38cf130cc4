package ports

import (
	"context"

	"github.com/classtrack/attendance-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) (*domain.Session, error)
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
}
