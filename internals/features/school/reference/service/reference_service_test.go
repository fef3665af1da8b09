package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"servicecredit_backend/internals/databases"
	referenceModel "servicecredit_backend/internals/features/school/reference/model"
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

func TestEnsureDepartmentIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	first, err := EnsureDepartment(db, "Science", "Science Department")
	require.NoError(t, err)
	second, err := EnsureDepartment(db, "Science", "different description")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Science Department", second.Description) // Attrs only on create

	var count int64
	require.NoError(t, db.Model(&referenceModel.DepartmentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureCategoryIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	first, err := EnsureCategory(db, "Training")
	require.NoError(t, err)
	second, err := EnsureCategory(db, "Training")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&referenceModel.ServiceCategoryModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListsAreOrderedByName(t *testing.T) {
	db := newTestDB(t)
	for _, name := range []string{"Science", "Arts", "Mathematics"} {
		_, err := EnsureDepartment(db, name, "")
		require.NoError(t, err)
	}

	depts, err := ListDepartments(db)
	require.NoError(t, err)
	require.Len(t, depts, 3)
	assert.Equal(t, "Arts", depts[0].Name)
	assert.Equal(t, "Mathematics", depts[1].Name)
	assert.Equal(t, "Science", depts[2].Name)
}
