package main

import (
	"io"
	"log"
	"os"

	"github.com/classtrack/attendance-backend/internal/config"
	"github.com/classtrack/attendance-backend/internal/logging"
	"github.com/classtrack/attendance-backend/internal/repository/postgres"
	"github.com/classtrack/attendance-backend/internal/service"
	transport "github.com/classtrack/attendance-backend/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	sessionRepo := postgres.NewSessionRepo(db)
	studentRepo := postgres.NewStudentRepo(db)
	attendanceRepo := postgres.NewAttendanceRepo(db)

	attendance := service.NewAttendanceService(sessionRepo, studentRepo, attendanceRepo)
	students := service.NewStudentService(studentRepo, attendanceRepo)

	identity := transport.HeaderIdentity{}

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAttendance(e, attendance, identity)
	transport.RegisterAdmin(e, attendance, students)
	transport.RegisterStudents(e, students, identity)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
