package ports

import (
	"context"
	"time"

	"github.com/classtrack/attendance-backend/internal/domain"
)

// AttendanceRepository is the conditional-write surface the engine's
// correctness rests on. FanOut and MarkPresent must each execute as a single
// atomic store operation; there is no application-level locking above them.
type AttendanceRepository interface {
	// FanOut inserts a pending record for every student in the section that
	// does not already hold one for the token. Returns the number inserted.
	FanOut(ctx context.Context, section, token, sessionName string) (int64, error)

	FindRecord(ctx context.Context, studentID, token string) (*domain.AttendanceRecord, error)

	// MarkPresent flips the (studentID, token) record to present with the
	// given join time, only if it is still pending. Returns rows modified.
	MarkPresent(ctx context.Context, studentID, token string, joinTime time.Time) (int64, error)

	ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error)

	// CheckIns returns id and join time for every present record of a session.
	CheckIns(ctx context.Context, token string) ([]domain.CheckInRecord, error)
}
