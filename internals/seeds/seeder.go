package seeds

import (
	"log"

	"gorm.io/gorm"

	"servicecredit_backend/internals/constants"
	referenceService "servicecredit_backend/internals/features/school/reference/service"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

const bootstrapPassword = "password123"

// Run seeds the bootstrap accounts and reference data. Idempotent: existing
// rows (keyed by unique email/name) are left alone.
func Run(db *gorm.DB) error {
	if err := ensureUser(db, "admin@school.edu", "System Admin", constants.RoleAdmin, ""); err != nil {
		return err
	}
	if err := ensureUser(db, "supervisor@school.edu", "Academic Supervisor", constants.RoleSupervisor, ""); err != nil {
		return err
	}
	if err := ensureUser(db, "teacher@school.edu", "John Doe", constants.RoleTeacher, "Science"); err != nil {
		return err
	}

	for _, name := range []string{"Training", "Committee", "Event/Workshop", "Community Service"} {
		if _, err := referenceService.EnsureCategory(db, name); err != nil {
			return err
		}
	}

	log.Println("seed complete")
	return nil
}

func ensureUser(db *gorm.DB, email, name string, role constants.Role, department string) error {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := userModel.UserModel{
		Email:    email,
		Name:     name,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(bootstrapPassword); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role != constants.RoleTeacher || department == "" {
			return nil
		}
		dept, err := referenceService.EnsureDepartment(tx, department, department+" Department")
		if err != nil {
			return err
		}
		profile := userModel.TeacherProfileModel{UserID: user.ID, DepartmentID: &dept.ID}
		return tx.Create(&profile).Error
	})
}
