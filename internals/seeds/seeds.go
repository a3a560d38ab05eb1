// file: internals/seeds/seeds.go
package seeds

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	branchModel "gymku_backend/internals/features/academy/branches/model"
	membershipModel "gymku_backend/internals/features/academy/memberships/model"
	userModel "gymku_backend/internals/features/users/user/model"
)

// Run seeds the minimum a fresh install needs: one branch, the base
// membership plans and an admin account. Idempotent, keyed on the
// unique columns, so it is safe to leave SEED_ENABLED on in dev.
func Run(db *gorm.DB) {
	seedBranch(db)
	seedMemberships(db)
	seedAdmin(db)
	log.Println("✅ Seed data applied.")
}

func seedBranch(db *gorm.DB) {
	branch := branchModel.BranchModel{
		BranchName:   "Sede Central",
		BranchCity:   "La Paz",
		BranchStatus: branchModel.BranchActivo,
	}
	if err := db.Where("branch_name = ?", branch.BranchName).
		FirstOrCreate(&branch).Error; err != nil {
		log.Printf("seed branch: %v", err)
	}
}

func seedMemberships(db *gorm.DB) {
	everyDay := pq.Int64Array{0, 1, 2, 3, 4, 5, 6}
	plans := []membershipModel.MembershipModel{
		{
			MembershipName:          "Mensual 12 sesiones",
			MembershipDurationDays:  30,
			MembershipTotalSessions: 12,
			MembershipAllowedDays:   pq.Int64Array{1, 3, 5},
			MembershipCost:          250,
			MembershipStatus:        membershipModel.MembershipActivo,
		},
		{
			MembershipName:          "Mensual libre",
			MembershipDurationDays:  30,
			MembershipTotalSessions: 30,
			MembershipAllowedDays:   everyDay,
			MembershipCost:          400,
			MembershipStatus:        membershipModel.MembershipActivo,
		},
	}
	for i := range plans {
		if err := db.Where("membership_name = ?", plans[i].MembershipName).
			FirstOrCreate(&plans[i]).Error; err != nil {
			log.Printf("seed membership %q: %v", plans[i].MembershipName, err)
		}
	}
}

func seedAdmin(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@gymku.local")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("⚠️ SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := userModel.UserModel{
		UserEmail:    email,
		UserName:     "Admin",
		UserLastname: "Gymku",
		UserRole:     userModel.RoleAdmin,
		UserStatus:   userModel.UserActivo,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("✅ Seeded admin account %s", email)
}
