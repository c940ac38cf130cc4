package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classtrack/attendance-backend/internal/domain"
	"github.com/classtrack/attendance-backend/internal/util"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		ID:       "u1",
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
		Section:  "CS101",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	students := &fakeStudentRepo{}
	svc := NewStudentService(students, &fakeAttendanceRepo{})

	input := validRegisterInput()
	students.createResult = &domain.Student{ID: input.ID, Section: input.Section}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	created := students.createInput
	if len(created.PasswordHash) == 0 || len(created.PasswordSalt) == 0 {
		t.Fatal("expected password hash and salt to be set")
	}
	if string(created.PasswordHash) == input.Password {
		t.Fatal("password stored in the clear")
	}
	if !util.VerifyPassword(input.Password, created.PasswordSalt, created.PasswordHash) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewStudentService(&fakeStudentRepo{}, &fakeAttendanceRepo{})

	cases := map[string]func(*RegisterInput){
		"missing id":      func(in *RegisterInput) { in.ID = "  " },
		"missing name":    func(in *RegisterInput) { in.Name = "" },
		"missing section": func(in *RegisterInput) { in.Section = "" },
		"bad email":       func(in *RegisterInput) { in.Email = "not-an-email" },
		"short password":  func(in *RegisterInput) { in.Password = "short" },
		"empty password":  func(in *RegisterInput) { in.Password = "" },
	}

	for name, mutate := range cases {
		input := validRegisterInput()
		mutate(&input)
		if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrStudentValidation) {
			t.Fatalf("%s: expected ErrStudentValidation, got %v", name, err)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	students := &fakeStudentRepo{createErr: &pgconn.PgError{Code: "23505"}}
	svc := NewStudentService(students, &fakeAttendanceRepo{})

	if _, err := svc.Register(context.Background(), validRegisterInput()); !errors.Is(err, ErrStudentExists) {
		t.Fatalf("expected ErrStudentExists, got %v", err)
	}
}

func TestProfileAttachesRecords(t *testing.T) {
	joined := time.Date(2026, 3, 9, 10, 2, 0, 0, time.UTC)
	students := &fakeStudentRepo{
		findByIDResult: &domain.Student{ID: "u1", Name: "Ada", Section: "CS101"},
	}
	attendance := &fakeAttendanceRepo{
		listByStudentResult: []domain.AttendanceRecord{
			{SessionToken: "tok1", SessionName: "Lecture1", Present: true, JoinTime: &joined},
			{SessionToken: "tok2", SessionName: "Lecture2"},
		},
	}
	svc := NewStudentService(students, attendance)

	student, err := svc.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if students.findByIDInput != "u1" {
		t.Fatalf("expected lookup of u1, got %q", students.findByIDInput)
	}
	if len(student.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(student.Records))
	}
	if !student.Records[0].Present || student.Records[1].Present {
		t.Fatalf("unexpected record state: %+v", student.Records)
	}
}

func TestProfileUnknownStudent(t *testing.T) {
	students := &fakeStudentRepo{findByIDErr: sql.ErrNoRows}
	svc := NewStudentService(students, &fakeAttendanceRepo{})

	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestListBySection(t *testing.T) {
	students := &fakeStudentRepo{
		listBySectionResult: []domain.Student{{ID: "u1", Section: "CS101"}},
	}
	svc := NewStudentService(students, &fakeAttendanceRepo{})

	listed, err := svc.ListBySection(context.Background(), "CS101")
	if err != nil {
		t.Fatalf("ListBySection returned error: %v", err)
	}
	if students.listBySectionInput != "CS101" {
		t.Fatalf("expected section CS101, got %q", students.listBySectionInput)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one student, got %d", len(listed))
	}
}
