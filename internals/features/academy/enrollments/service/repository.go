// file: internals/features/academy/enrollments/service/repository.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/academy/enrollments/model"
)

// GormStore is the production Store backed by PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// WithTx rebinds the store to a transaction handle.
func (s *GormStore) WithTx(tx *gorm.DB) *GormStore {
	return &GormStore{DB: tx}
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.EnrollmentModel, error) {
	var enr model.EnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("enrollment_id = ?", id).
		First(&enr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enr, nil
}

func (s *GormStore) ApplyCounters(ctx context.Context, id uuid.UUID, used, remaining int, status model.EnrollmentStatus, guardRemaining bool) (int64, error) {
	tx := s.DB.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", id)
	if guardRemaining {
		tx = tx.Where("enrollment_remaining_sessions > 0")
	}
	res := tx.Updates(map[string]interface{}{
		"enrollment_used_sessions":      used,
		"enrollment_remaining_sessions": remaining,
		"enrollment_status":             status,
		"enrollment_updated_at":         time.Now(),
	})
	return res.RowsAffected, res.Error
}

func (s *GormStore) SetStatus(ctx context.Context, id uuid.UUID, status model.EnrollmentStatus) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", id).
		Updates(map[string]interface{}{
			"enrollment_status":     status,
			"enrollment_updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (s *GormStore) ListActiveExpiring(ctx context.Context, before time.Time) ([]model.EnrollmentModel, error) {
	var out []model.EnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("enrollment_status = ? AND enrollment_end_date < ?", model.EnrollmentActiva, before).
		Find(&out).Error
	return out, err
}
