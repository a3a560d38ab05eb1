// file: internals/features/attendance/identity/gorm.go
package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"

	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	studentModel "gymku_backend/internals/features/academy/students/model"
)

// GormStudents looks students up by CI in PostgreSQL.
type GormStudents struct {
	DB *gorm.DB
}

func (d GormStudents) FindByCI(ctx context.Context, ci string) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	err := d.DB.WithContext(ctx).
		Where("student_ci = ?", ci).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GormInstructors looks instructors up by CI in PostgreSQL.
type GormInstructors struct {
	DB *gorm.DB
}

func (d GormInstructors) FindByCI(ctx context.Context, ci string) (*instructorModel.InstructorModel, error) {
	var i instructorModel.InstructorModel
	err := d.DB.WithContext(ctx).
		Where("instructor_ci = ?", ci).
		First(&i).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}
