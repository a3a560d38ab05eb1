// file: internals/features/academy/schedules/service/repository.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/academy/schedules/model"
)

// GormStore is the production Store backed by PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListByBranchDay(ctx context.Context, branchID uuid.UUID, day string) ([]model.ScheduleModel, error) {
	var out []model.ScheduleModel
	err := s.DB.WithContext(ctx).
		Where("schedule_branch_id = ? AND schedule_day = ? AND schedule_status = ?",
			branchID, day, model.ScheduleActivo).
		Find(&out).Error
	return out, err
}

func (s *GormStore) ListByInstructorDay(ctx context.Context, instructorID uuid.UUID, day string) ([]model.ScheduleModel, error) {
	var out []model.ScheduleModel
	err := s.DB.WithContext(ctx).
		Where("schedule_instructor_id = ? AND schedule_day = ? AND schedule_status = ?",
			instructorID, day, model.ScheduleActivo).
		Find(&out).Error
	return out, err
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	var sch model.ScheduleModel
	err := s.DB.WithContext(ctx).
		Where("schedule_id = ?", id).
		First(&sch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sch, nil
}
