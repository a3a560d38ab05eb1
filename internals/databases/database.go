// file: internals/databases/database.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	branchModel "gymku_backend/internals/features/academy/branches/model"
	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	membershipModel "gymku_backend/internals/features/academy/memberships/model"
	scheduleModel "gymku_backend/internals/features/academy/schedules/model"
	studentModel "gymku_backend/internals/features/academy/students/model"
	classAttModel "gymku_backend/internals/features/attendance/classes/model"
	instAttModel "gymku_backend/internals/features/attendance/instructor/model"
	stdAttModel "gymku_backend/internals/features/attendance/student/model"
	userModel "gymku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout; PreferSimpleProtocol keeps PgBouncer happy
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gymku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate runs AutoMigrate for every model. The unique indexes declared on the
// attendance models are what turns the duplicate-mark check-then-act sequence
// into a single atomic write, so migration must run before the API serves.
func Migrate() {
	err := DB.AutoMigrate(
		&branchModel.BranchModel{},
		&studentModel.StudentModel{},
		&instructorModel.InstructorModel{},
		&membershipModel.MembershipModel{},
		&scheduleModel.ScheduleModel{},
		&enrollmentModel.EnrollmentModel{},
		&stdAttModel.StudentAttendanceModel{},
		&instAttModel.InstructorAttendanceModel{},
		&classAttModel.ClassAttendanceModel{},
		&userModel.UserModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
