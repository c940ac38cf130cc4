package domain

import "time"

// Student is a registered student. The id is the external identifier carried
// by the X-User-Id header.
type Student struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	PasswordSalt []byte    `db:"password_salt" json:"-"`
	Section      string    `db:"section" json:"section"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	// Records is the student's attendance history, ordered by insertion.
	// Populated only by profile lookups.
	Records []AttendanceRecord `db:"-" json:"attendance_records,omitempty"`
}

// AttendanceRecord is a per-student, per-session placeholder created when a
// session fans out to a section, and flipped to present on check-in. The
// session name is denormalized so the history survives session deletion.
type AttendanceRecord struct {
	ID           int64      `db:"id" json:"-"`
	StudentID    string     `db:"student_id" json:"-"`
	SessionToken string     `db:"session_token" json:"sessionId"`
	SessionName  string     `db:"session_name" json:"sessionName"`
	Present      bool       `db:"present" json:"present"`
	JoinTime     *time.Time `db:"join_time" json:"joinTime"`
}

// CheckInRecord is the reporting projection of a completed check-in.
type CheckInRecord struct {
	StudentID string    `db:"student_id" json:"userId"`
	JoinTime  time.Time `db:"join_time" json:"joinTime"`
}
