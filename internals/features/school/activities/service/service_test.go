package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"servicecredit_backend/internals/constants"
	"servicecredit_backend/internals/databases"
	activityModel "servicecredit_backend/internals/features/school/activities/model"
	referenceModel "servicecredit_backend/internals/features/school/reference/model"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, databases.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role constants.Role) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{Name: name, Email: email, Role: role, IsActive: true}
	require.NoError(t, u.SetPassword("password123"))
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTeacher(t *testing.T, db *gorm.DB, name, email, department string) (*userModel.UserModel, *userModel.TeacherProfileModel) {
	t.Helper()
	u := createUser(t, db, name, email, constants.RoleTeacher)
	profile := &userModel.TeacherProfileModel{UserID: u.ID}
	if department != "" {
		dept := &referenceModel.DepartmentModel{Name: department}
		require.NoError(t, db.Create(dept).Error)
		profile.DepartmentID = &dept.ID
	}
	require.NoError(t, db.Create(profile).Error)
	return u, profile
}

func createCategory(t *testing.T, db *gorm.DB, name string) *referenceModel.ServiceCategoryModel {
	t.Helper()
	cat := &referenceModel.ServiceCategoryModel{Name: name}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func seedActivity(
	t *testing.T,
	db *gorm.DB,
	teacherID, categoryID uuid.UUID,
	title string,
	hours float64,
	status activityModel.ActivityStatus,
	createdAt time.Time,
) *activityModel.ActivityModel {
	t.Helper()
	a := &activityModel.ActivityModel{
		Title:         title,
		Description:   "seeded",
		Date:          datatypes.Date(createdAt),
		DurationHours: hours,
		Status:        status,
		TeacherID:     teacherID,
		CategoryID:    categoryID,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

// backdate moves a row's updated_at without going through model hooks.
func backdate(t *testing.T, db *gorm.DB, table string, id uuid.UUID, ts time.Time) {
	t.Helper()
	require.NoError(t, db.Table(table).Where("id = ?", id).UpdateColumn("updated_at", ts).Error)
}

func newTestUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}
