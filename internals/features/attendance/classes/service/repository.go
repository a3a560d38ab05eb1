// file: internals/features/attendance/classes/service/repository.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	"gymku_backend/internals/features/attendance/classes/model"
)

// GormStore is the production Store backed by PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ActiveEnrollment(ctx context.Context, studentID, branchID uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	var enr enrollmentModel.EnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("enrollment_student_id = ? AND enrollment_branch_id = ? AND enrollment_status = ?",
			studentID, branchID, enrollmentModel.EnrollmentActiva).
		First(&enr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enr, nil
}

func (s *GormStore) MarkedOn(ctx context.Context, personID, scheduleID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.ClassAttendanceModel{}).
		Where("class_attendance_person_id = ? AND class_attendance_schedule_id = ? AND class_attendance_date = ?",
			personID, scheduleID, day.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) Create(ctx context.Context, att *model.ClassAttendanceModel) error {
	return s.DB.WithContext(ctx).Create(att).Error
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassAttendanceModel, error) {
	var att model.ClassAttendanceModel
	err := s.DB.WithContext(ctx).
		Where("class_attendance_id = ?", id).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("class_attendance_id = ?", id).
		Delete(&model.ClassAttendanceModel{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) ListBySchedule(ctx context.Context, scheduleID uuid.UUID, day time.Time) ([]model.ClassAttendanceModel, error) {
	var out []model.ClassAttendanceModel
	err := s.DB.WithContext(ctx).
		Where("class_attendance_schedule_id = ? AND class_attendance_date = ?", scheduleID, day.Format("2006-01-02")).
		Order("class_attendance_created_at ASC").
		Find(&out).Error
	return out, err
}

func (s *GormStore) RunInTx(ctx context.Context, fn func(txStore Store, txLedger *enrollmentService.Ledger) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &GormStore{DB: tx}
		txLedger := enrollmentService.NewLedger(enrollmentService.NewGormStore(tx))
		return fn(txStore, txLedger)
	})
}
