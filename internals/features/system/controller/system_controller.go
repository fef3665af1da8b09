package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicecredit_backend/internals/constants"
	referenceService "servicecredit_backend/internals/features/school/reference/service"
	systemDTO "servicecredit_backend/internals/features/system/dto"
	userModel "servicecredit_backend/internals/features/users/user/model"
	helper "servicecredit_backend/internals/helpers"
)

// Default reference data, ensured idempotently by the seed endpoint.
var (
	seedCategories  = []string{"Training", "Workshop", "Community Service", "Publication", "Other"}
	seedDepartments = []string{"Science", "Mathematics", "English", "History", "Physical Education", "Arts"}
)

const defaultResetPassword = "welcome123"

type SystemController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSystemController(db *gorm.DB) *SystemController {
	return &SystemController{DB: db, validate: validator.New()}
}

// GET /api/system/teachers (ADMIN)
func (sc *SystemController) ListTeachers(c *fiber.Ctx) error {
	var teachers []userModel.UserModel
	err := sc.DB.
		Preload("TeacherProfile.Department").
		Where("role = ?", constants.RoleTeacher).
		Order("name ASC").
		Find(&teachers).Error
	if err != nil {
		log.Println("[ERROR] ListTeachers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	items := make([]systemDTO.TeacherListItem, 0, len(teachers))
	for _, t := range teachers {
		item := systemDTO.TeacherListItem{
			ID:         t.ID,
			Name:       t.Name,
			Email:      t.Email,
			Status:     activeLabel(t.IsActive),
			Department: "N/A",
			JoinDate:   t.CreatedAt,
		}
		if t.TeacherProfile != nil {
			item.DepartmentID = t.TeacherProfile.DepartmentID
			if t.TeacherProfile.Department != nil {
				item.Department = t.TeacherProfile.Department.Name
			}
		}
		items = append(items, item)
	}
	return helper.JsonOK(c, "Teachers fetched", items)
}

// POST /api/system/teachers (ADMIN)
func (sc *SystemController) CreateTeacher(c *fiber.Ctx) error {
	var req systemDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := sc.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := sc.DB.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		log.Println("[ERROR] CreateTeacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	user := userModel.UserModel{
		Email:    req.Email,
		Name:     req.Name,
		Role:     constants.RoleTeacher,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		log.Println("[ERROR] CreateTeacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if req.DepartmentID == "" {
			return nil
		}
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return err
		}
		profile := userModel.TeacherProfileModel{UserID: user.ID, DepartmentID: &deptID}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Println("[ERROR] CreateTeacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.JsonCreated(c, "Teacher created successfully", fiber.Map{"user_id": user.ID})
}

// PUT /api/system/teachers/:id (ADMIN)
func (sc *SystemController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req systemDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := sc.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userModel.UserModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":      req.Name,
				"email":     req.Email,
				"is_active": req.Status == "Active",
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if req.DepartmentID == "" {
			return nil
		}
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return err
		}

		// Upsert the profile so a department can be assigned later than signup.
		var profile userModel.TeacherProfileModel
		err = tx.First(&profile, "user_id = ?", id).Error
		switch {
		case err == nil:
			return tx.Model(&profile).Update("department_id", deptID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = userModel.TeacherProfileModel{UserID: id, DepartmentID: &deptID}
			return tx.Create(&profile).Error
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] UpdateTeacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonOK(c, "Teacher updated successfully", nil)
}

// PUT /api/system/teachers/:id/reset-password (ADMIN)
func (sc *SystemController) ResetPassword(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var user userModel.UserModel
	if err := sc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] ResetPassword:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	if err := user.SetPassword(defaultResetPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	if err := sc.DB.Model(&user).Update("password", user.Password).Error; err != nil {
		log.Println("[ERROR] ResetPassword:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	return helper.JsonOK(c, "Password reset to \""+defaultResetPassword+"\"", nil)
}

// GET /api/system/reference-data (authenticated)
func (sc *SystemController) ReferenceData(c *fiber.Ctx) error {
	categories, err := referenceService.ListCategories(sc.DB)
	if err != nil {
		log.Println("[ERROR] ReferenceData:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reference data")
	}
	departments, err := referenceService.ListDepartments(sc.DB)
	if err != nil {
		log.Println("[ERROR] ReferenceData:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reference data")
	}
	return helper.JsonOK(c, "Reference data fetched", fiber.Map{
		"categories":  categories,
		"departments": departments,
	})
}

// POST /api/system/seed (public) ensures the reference data exists.
// Idempotent, left open for initial setup.
func (sc *SystemController) Seed(c *fiber.Ctx) error {
	for _, name := range seedCategories {
		if _, err := referenceService.EnsureCategory(sc.DB, name); err != nil {
			log.Println("[ERROR] Seed category:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Seeding failed")
		}
	}
	for _, name := range seedDepartments {
		if _, err := referenceService.EnsureDepartment(sc.DB, name, ""); err != nil {
			log.Println("[ERROR] Seed department:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Seeding failed")
		}
	}
	return helper.JsonOK(c, "Reference data seeded", nil)
}

func activeLabel(isActive bool) string {
	if isActive {
		return "Active"
	}
	return "Inactive"
}
