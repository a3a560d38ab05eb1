// file: internals/features/attendance/student/service/repository.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	"gymku_backend/internals/features/attendance/student/model"
)

// GormStore is the production Store backed by PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ActiveEnrollment(ctx context.Context, studentID uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	var enr enrollmentModel.EnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("enrollment_student_id = ? AND enrollment_status = ?", studentID, enrollmentModel.EnrollmentActiva).
		Order("enrollment_created_at DESC").
		First(&enr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enr, nil
}

func (s *GormStore) MarkedOn(ctx context.Context, studentID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_student_id = ? AND student_attendance_date = ?", studentID, day.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) Create(ctx context.Context, att *model.StudentAttendanceModel) error {
	return s.DB.WithContext(ctx).Create(att).Error
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.StudentAttendanceModel, error) {
	var att model.StudentAttendanceModel
	err := s.DB.WithContext(ctx).
		Where("student_attendance_id = ?", id).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (s *GormStore) SetStatus(ctx context.Context, id uuid.UUID, status model.StudentAttendanceStatus) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_id = ?", id).
		Update("student_attendance_status", status)
	return res.RowsAffected, res.Error
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("student_attendance_id = ?", id).
		Delete(&model.StudentAttendanceModel{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) ListOn(ctx context.Context, branchID *uuid.UUID, day time.Time, status model.StudentAttendanceStatus) ([]model.StudentAttendanceModel, error) {
	tx := s.DB.WithContext(ctx).
		Where("student_attendance_date = ?", day.Format("2006-01-02"))
	if branchID != nil {
		tx = tx.Where("student_attendance_branch_id = ?", *branchID)
	}
	if status != "" {
		tx = tx.Where("student_attendance_status = ?", status)
	}
	var out []model.StudentAttendanceModel
	err := tx.Order("student_attendance_created_at DESC").Find(&out).Error
	return out, err
}

func (s *GormStore) CountByStatus(ctx context.Context, branchID *uuid.UUID, day time.Time) (map[model.StudentAttendanceStatus]int64, error) {
	tx := s.DB.WithContext(ctx).
		Model(&model.StudentAttendanceModel{}).
		Select("student_attendance_status AS status, COUNT(*) AS total").
		Where("student_attendance_date = ?", day.Format("2006-01-02"))
	if branchID != nil {
		tx = tx.Where("student_attendance_branch_id = ?", *branchID)
	}

	var rows []struct {
		Status model.StudentAttendanceStatus
		Total  int64
	}
	if err := tx.Group("student_attendance_status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[model.StudentAttendanceStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return out, nil
}

func (s *GormStore) RunInTx(ctx context.Context, fn func(txStore Store, txLedger *enrollmentService.Ledger) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &GormStore{DB: tx}
		txLedger := enrollmentService.NewLedger(enrollmentService.NewGormStore(tx))
		return fn(txStore, txLedger)
	})
}
