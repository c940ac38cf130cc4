package service

import (
	"context"
	"errors"
	"strings"

	"github.com/classtrack/attendance-backend/internal/domain"
	"github.com/classtrack/attendance-backend/internal/repository/ports"
	"github.com/classtrack/attendance-backend/internal/util"
)

var (
	ErrStudentExists     = errors.New("student already exists")
	ErrStudentValidation = errors.New("student validation failed")
)

type StudentService struct {
	students   ports.StudentRepository
	attendance ports.AttendanceRepository
}

type RegisterInput struct {
	ID       string
	Name     string
	Email    string
	Password string
	Section  string
}

func NewStudentService(studentRepo ports.StudentRepository, attendanceRepo ports.AttendanceRepository) *StudentService {
	return &StudentService{students: studentRepo, attendance: attendanceRepo}
}

// Register creates a student account. The password is hashed before storage;
// nothing in this service ever verifies it, identity stays header-trusted.
func (s *StudentService) Register(ctx context.Context, input RegisterInput) (*domain.Student, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Section = strings.TrimSpace(input.Section)

	if input.ID == "" || input.Name == "" || input.Section == "" {
		return nil, ErrStudentValidation
	}
	if !strings.Contains(input.Email, "@") {
		return nil, ErrStudentValidation
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, ErrStudentValidation
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}

	student, err := s.students.Create(ctx, domain.Student{
		ID:           input.ID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Section:      input.Section,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrStudentExists
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) ListBySection(ctx context.Context, section string) ([]domain.Student, error) {
	return s.students.ListBySection(ctx, section)
}

// Profile returns a student together with their attendance history, ordered
// the way it was fanned out.
func (s *StudentService) Profile(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	records, err := s.attendance.ListByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Records = records
	return student, nil
}
