package service

import (
	"gorm.io/gorm"

	referenceModel "servicecredit_backend/internals/features/school/reference/model"
)

// EnsureDepartment returns the department with the given name, creating it
// when missing. Idempotent by the unique name index.
func EnsureDepartment(db *gorm.DB, name, description string) (*referenceModel.DepartmentModel, error) {
	var dept referenceModel.DepartmentModel
	err := db.Where(referenceModel.DepartmentModel{Name: name}).
		Attrs(referenceModel.DepartmentModel{Description: description}).
		FirstOrCreate(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// EnsureCategory returns the service category with the given name, creating it
// when missing.
func EnsureCategory(db *gorm.DB, name string) (*referenceModel.ServiceCategoryModel, error) {
	var cat referenceModel.ServiceCategoryModel
	err := db.Where(referenceModel.ServiceCategoryModel{Name: name}).FirstOrCreate(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListDepartments returns all departments ordered by name.
func ListDepartments(db *gorm.DB) ([]referenceModel.DepartmentModel, error) {
	var depts []referenceModel.DepartmentModel
	if err := db.Order("name ASC").Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}

// ListCategories returns all service categories ordered by name.
func ListCategories(db *gorm.DB) ([]referenceModel.ServiceCategoryModel, error) {
	var cats []referenceModel.ServiceCategoryModel
	if err := db.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
