package http

import (
	"context"
	"database/sql"
	"time"

	"github.com/classtrack/attendance-backend/internal/domain"
)

// Stub repositories backing real services in handler tests. They behave like
// the postgres layer over a tiny in-memory state, including the conditional
// semantics of MarkPresent.

type stubSessionRepo struct {
	session  *domain.Session
	sessions []domain.Session
	err      error
}

func (s *stubSessionRepo) Create(ctx context.Context, session domain.Session) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := session
	s.session = &created
	return &created, nil
}

func (s *stubSessionRepo) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.session == nil || s.session.Token != token {
		return nil, sql.ErrNoRows
	}
	return s.session, nil
}

func (s *stubSessionRepo) List(ctx context.Context) ([]domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.Session(nil), s.sessions...), nil
}

type stubStudentRepo struct {
	students  map[string]*domain.Student
	createErr error
}

func (s *stubStudentRepo) Create(ctx context.Context, student domain.Student) (*domain.Student, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.students == nil {
		s.students = make(map[string]*domain.Student)
	}
	created := student
	s.students[student.ID] = &created
	return &created, nil
}

func (s *stubStudentRepo) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return student, nil
}

func (s *stubStudentRepo) ListBySection(ctx context.Context, section string) ([]domain.Student, error) {
	listed := make([]domain.Student, 0)
	for _, student := range s.students {
		if student.Section == section {
			listed = append(listed, *student)
		}
	}
	return listed, nil
}

type stubAttendanceRepo struct {
	records  map[string]*domain.AttendanceRecord
	checkIns []domain.CheckInRecord
}

func recordKey(studentID, token string) string {
	return studentID + "/" + token
}

func (s *stubAttendanceRepo) FanOut(ctx context.Context, section, token, sessionName string) (int64, error) {
	return 0, nil
}

func (s *stubAttendanceRepo) FindRecord(ctx context.Context, studentID, token string) (*domain.AttendanceRecord, error) {
	record, ok := s.records[recordKey(studentID, token)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return record, nil
}

func (s *stubAttendanceRepo) MarkPresent(ctx context.Context, studentID, token string, joinTime time.Time) (int64, error) {
	record, ok := s.records[recordKey(studentID, token)]
	if !ok || record.Present {
		return 0, nil
	}
	record.Present = true
	record.JoinTime = &joinTime
	return 1, nil
}

func (s *stubAttendanceRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error) {
	listed := make([]domain.AttendanceRecord, 0)
	for _, record := range s.records {
		if record.StudentID == studentID {
			listed = append(listed, *record)
		}
	}
	return listed, nil
}

func (s *stubAttendanceRepo) CheckIns(ctx context.Context, token string) ([]domain.CheckInRecord, error) {
	return append([]domain.CheckInRecord(nil), s.checkIns...), nil
}
