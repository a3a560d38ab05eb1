// file: internals/features/attendance/instructor/service/repository.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/attendance/instructor/model"
)

// GormStore is the production Store backed by PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) MarkedOn(ctx context.Context, instructorID, scheduleID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.InstructorAttendanceModel{}).
		Where("instructor_attendance_instructor_id = ? AND instructor_attendance_schedule_id = ? AND instructor_attendance_date = ?",
			instructorID, scheduleID, day.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) Create(ctx context.Context, att *model.InstructorAttendanceModel) error {
	return s.DB.WithContext(ctx).Create(att).Error
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.InstructorAttendanceModel, error) {
	var att model.InstructorAttendanceModel
	err := s.DB.WithContext(ctx).
		Where("instructor_attendance_id = ?", id).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (s *GormStore) SetDeparture(ctx context.Context, id uuid.UUID, departure string, actualHours float64, status model.InstructorAttendanceStatus) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.InstructorAttendanceModel{}).
		Where("instructor_attendance_id = ? AND instructor_attendance_actual_departure_time IS NULL", id).
		Updates(map[string]interface{}{
			"instructor_attendance_actual_departure_time": departure,
			"instructor_attendance_actual_hours":          actualHours,
			"instructor_attendance_status":                status,
		})
	return res.RowsAffected, res.Error
}

func (s *GormStore) SetStatus(ctx context.Context, id uuid.UUID, status model.InstructorAttendanceStatus) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.InstructorAttendanceModel{}).
		Where("instructor_attendance_id = ?", id).
		Update("instructor_attendance_status", status)
	return res.RowsAffected, res.Error
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("instructor_attendance_id = ?", id).
		Delete(&model.InstructorAttendanceModel{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) ListOn(ctx context.Context, branchID *uuid.UUID, day time.Time) ([]model.InstructorAttendanceModel, error) {
	tx := s.DB.WithContext(ctx).
		Where("instructor_attendance_date = ?", day.Format("2006-01-02"))
	if branchID != nil {
		tx = tx.Where("instructor_attendance_branch_id = ?", *branchID)
	}
	var out []model.InstructorAttendanceModel
	err := tx.Order("instructor_attendance_created_at DESC").Find(&out).Error
	return out, err
}

func (s *GormStore) ListRange(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]model.InstructorAttendanceModel, error) {
	var out []model.InstructorAttendanceModel
	err := s.DB.WithContext(ctx).
		Where("instructor_attendance_instructor_id = ? AND instructor_attendance_date BETWEEN ? AND ?",
			instructorID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("instructor_attendance_date ASC").
		Find(&out).Error
	return out, err
}
