package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/classtrack/attendance-backend/internal/domain"
)

type AttendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepo(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// FanOut creates a pending record for every student in the section in one
// statement. ON CONFLICT keeps the insert exactly-once per (student, token)
// even when two sessions for the same token race.
func (r *AttendanceRepository) FanOut(ctx context.Context, section, token, sessionName string) (int64, error) {
	const query = `
        INSERT INTO attendance_record (student_id, session_token, session_name)
        SELECT id, $2, $3
        FROM student
        WHERE section = $1
        ON CONFLICT (student_id, session_token) DO NOTHING
    `
	result, err := r.db.ExecContext(ctx, query, section, token, sessionName)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *AttendanceRepository) FindRecord(ctx context.Context, studentID, token string) (*domain.AttendanceRecord, error) {
	const query = `
        SELECT id, student_id, session_token, session_name, present, join_time
        FROM attendance_record
        WHERE student_id = $1 AND session_token = $2
    `
	var record domain.AttendanceRecord
	if err := r.db.GetContext(ctx, &record, query, studentID, token); err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkPresent is the check-in write. The present = false predicate makes the
// flip single-shot: of two concurrent check-ins only one sees a modified row.
func (r *AttendanceRepository) MarkPresent(ctx context.Context, studentID, token string, joinTime time.Time) (int64, error) {
	const query = `
        UPDATE attendance_record
        SET present = true, join_time = $3
        WHERE student_id = $1 AND session_token = $2 AND present = false
    `
	result, err := r.db.ExecContext(ctx, query, studentID, token, joinTime)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error) {
	const query = `
        SELECT id, student_id, session_token, session_name, present, join_time
        FROM attendance_record
        WHERE student_id = $1
        ORDER BY id
    `
	records := make([]domain.AttendanceRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepository) CheckIns(ctx context.Context, token string) ([]domain.CheckInRecord, error) {
	const query = `
        SELECT student_id, join_time
        FROM attendance_record
        WHERE session_token = $1 AND present = true
        ORDER BY join_time
    `
	records := make([]domain.CheckInRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, token); err != nil {
		return nil, err
	}
	return records, nil
}
