// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
)

type UserStatus string

const (
	UserActivo   UserStatus = "activo"
	UserInactivo UserStatus = "inactivo"
)

/* =========================
   Model: UserModel
========================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserEmail    string `gorm:"type:varchar(120);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`
	UserName     string `gorm:"type:varchar(80);not null;column:user_name" json:"user_name"`
	UserLastname string `gorm:"type:varchar(80);not null;column:user_lastname" json:"user_lastname"`

	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	UserRole   UserRole   `gorm:"type:varchar(12);not null;column:user_role" json:"user_role"`
	UserStatus UserStatus `gorm:"type:varchar(10);not null;default:'activo';column:user_status" json:"user_status"`

	UserCreatedBy *uuid.UUID `gorm:"type:uuid;column:user_created_by" json:"user_created_by,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		u.UserID = id
	}
	return nil
}

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}

func (u *UserModel) FullName() string {
	return u.UserName + " " + u.UserLastname
}
