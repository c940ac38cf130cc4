package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/classtrack/attendance-backend/internal/domain"
	"github.com/classtrack/attendance-backend/internal/repository/ports"
)

var (
	ErrSessionNotFound  = errors.New("invalid or unknown session token")
	ErrSessionExpired   = errors.New("session has expired")
	ErrStudentNotFound  = errors.New("student not found")
	ErrRecordNotFound   = errors.New("no attendance record found for this session")
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrUpdateFailed     = errors.New("could not update attendance record")
)

// Sessions accept check-ins for a fixed five minutes after creation.
const sessionDurationMinutes = 5

type AttendanceService struct {
	sessions   ports.SessionRepository
	students   ports.StudentRepository
	attendance ports.AttendanceRepository
	now        func() time.Time
}

type TokenResult struct {
	Token           string `json:"token"`
	DurationMinutes int    `json:"durationMinutes"`
}

type CheckInResult struct {
	SessionName string
	JoinTime    time.Time
}

func NewAttendanceService(
	sessionRepo ports.SessionRepository,
	studentRepo ports.StudentRepository,
	attendanceRepo ports.AttendanceRepository,
) *AttendanceService {
	return &AttendanceService{
		sessions:   sessionRepo,
		students:   studentRepo,
		attendance: attendanceRepo,
		now:        time.Now,
	}
}

// GenerateToken opens a new attendance session for a section and fans out a
// pending record to every student in it. The fan-out is one conditional bulk
// insert, so a student never ends up with two records for the same token no
// matter how calls interleave.
func (s *AttendanceService) GenerateToken(ctx context.Context, creatorID, section, sessionName string) (*TokenResult, error) {
	token := uuid.NewString()
	now := s.now()

	session := domain.Session{
		Token:     token,
		Name:      sessionName,
		Section:   section,
		CreatedBy: creatorID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionDurationMinutes * time.Minute),
		Active:    true,
	}
	if _, err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if _, err := s.attendance.FanOut(ctx, section, token, sessionName); err != nil {
		return nil, err
	}

	return &TokenResult{Token: token, DurationMinutes: sessionDurationMinutes}, nil
}

// CheckIn redeems a session token for a student. Checks run in a fixed order
// and the first failure wins; the final flip is a conditional update so that
// concurrent check-ins for the same student count once.
func (s *AttendanceService) CheckIn(ctx context.Context, token, studentID string) (*CheckInResult, error) {
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		return nil, ErrSessionExpired
	}

	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		if isNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	record, err := s.attendance.FindRecord(ctx, studentID, token)
	if err != nil {
		if isNotFound(err) {
			// The student's section was not part of the fan-out.
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if record.Present {
		return nil, ErrAlreadyCheckedIn
	}

	joinTime := s.now()
	modified, err := s.attendance.MarkPresent(ctx, studentID, token, joinTime)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		// A concurrent check-in won the conditional update between our read
		// and the write. Tell that caller apart from a genuine write failure.
		current, err := s.attendance.FindRecord(ctx, studentID, token)
		if err == nil && current.Present {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, ErrUpdateFailed
	}

	return &CheckInResult{SessionName: session.Name, JoinTime: joinTime}, nil
}

// ListSessions returns every stored session, newest first. Expired and
// inactive sessions are included; the active flag and expiry travel with
// each summary.
func (s *AttendanceService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.List(ctx)
}

// CheckInRecords reports who checked in to a session and when.
func (s *AttendanceService) CheckInRecords(ctx context.Context, token string) ([]domain.CheckInRecord, error) {
	return s.attendance.CheckIns(ctx, token)
}
