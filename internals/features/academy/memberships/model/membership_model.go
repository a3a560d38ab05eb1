// file: internals/features/academy/memberships/model/membership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type MembershipStatus string

const (
	MembershipActivo   MembershipStatus = "activo"
	MembershipInactivo MembershipStatus = "inactivo"
)

/* =========================
   Model: MembershipModel
========================= */

type MembershipModel struct {
	MembershipID uuid.UUID `gorm:"type:uuid;primaryKey;column:membership_id" json:"membership_id"`

	MembershipName string `gorm:"type:varchar(120);not null;uniqueIndex:uq_memberships_name;column:membership_name" json:"membership_name"`

	MembershipDurationDays  int `gorm:"not null;column:membership_duration_days" json:"membership_duration_days"`
	MembershipTotalSessions int `gorm:"not null;column:membership_total_sessions" json:"membership_total_sessions"`

	// Weekdays the plan allows (0=Domingo..6=Sábado)
	MembershipAllowedDays pq.Int64Array `gorm:"type:int[];column:membership_allowed_days" json:"membership_allowed_days"`

	MembershipCost float64 `gorm:"type:numeric(10,2);not null;column:membership_cost" json:"membership_cost"`

	MembershipStatus MembershipStatus `gorm:"type:varchar(10);not null;default:'activo';column:membership_status" json:"membership_status"`

	MembershipCreatedAt time.Time      `gorm:"column:membership_created_at;autoCreateTime" json:"membership_created_at"`
	MembershipUpdatedAt time.Time      `gorm:"column:membership_updated_at;autoUpdateTime" json:"membership_updated_at"`
	MembershipDeletedAt gorm.DeletedAt `gorm:"column:membership_deleted_at;index" json:"-"`
}

func (MembershipModel) TableName() string { return "memberships" }

func (m *MembershipModel) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.MembershipID = id
	}
	return nil
}
