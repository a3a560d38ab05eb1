// file: internals/features/academy/branches/model/branch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type BranchStatus string

const (
	BranchActivo   BranchStatus = "activo"
	BranchInactivo BranchStatus = "inactivo"
)

/* =========================
   Model: BranchModel
========================= */

type BranchModel struct {
	BranchID uuid.UUID `gorm:"type:uuid;primaryKey;column:branch_id" json:"branch_id"`

	BranchName string `gorm:"type:varchar(120);not null;uniqueIndex:uq_branches_name;column:branch_name" json:"branch_name"`
	BranchCity string `gorm:"type:varchar(80);not null;column:branch_city" json:"branch_city"`

	// Kiosk network identity (the check-in terminal binds to these)
	BranchIP   string `gorm:"type:varchar(45);column:branch_ip" json:"branch_ip"`
	BranchMask string `gorm:"type:varchar(45);column:branch_mask" json:"branch_mask"`

	BranchStatus BranchStatus `gorm:"type:varchar(10);not null;default:'activo';column:branch_status" json:"branch_status"`

	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time      `gorm:"column:branch_updated_at;autoUpdateTime" json:"branch_updated_at"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"-"`
}

func (BranchModel) TableName() string { return "branches" }

func (b *BranchModel) BeforeCreate(tx *gorm.DB) error {
	if b.BranchID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.BranchID = id
	}
	return nil
}
