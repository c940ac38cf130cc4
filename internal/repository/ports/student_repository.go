package ports

import (
	"context"

	"github.com/classtrack/attendance-backend/internal/domain"
)

type StudentRepository interface {
	Create(ctx context.Context, student domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	ListBySection(ctx context.Context, section string) ([]domain.Student, error)
}
