package service

import (
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"servicecredit_backend/internals/configs"
	"servicecredit_backend/internals/constants"
	"servicecredit_backend/internals/databases"
	referenceModel "servicecredit_backend/internals/features/school/reference/model"
	authDTO "servicecredit_backend/internals/features/users/auth/dto"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	configs.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, databases.Migrate(db))
	return NewAuthService(db)
}

func TestRegisterTeacherCreatesProfileAndDepartment(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(authDTO.RegisterRequest{
		Email:      "john@school.edu",
		Password:   "password123",
		Name:       "John Doe",
		Department: "Science",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleTeacher, user.Role)

	var profile userModel.TeacherProfileModel
	require.NoError(t, svc.DB.Preload("Department").First(&profile, "user_id = ?", user.ID).Error)
	require.NotNil(t, profile.Department)
	assert.Equal(t, "Science", profile.Department.Name)

	// Registering a second teacher in the same department reuses it.
	_, err = svc.Register(authDTO.RegisterRequest{
		Email:      "jane@school.edu",
		Password:   "password123",
		Name:       "Jane Roe",
		Department: "Science",
	})
	require.NoError(t, err)
	var deptCount int64
	require.NoError(t, svc.DB.Model(&referenceModel.DepartmentModel{}).Count(&deptCount).Error)
	assert.EqualValues(t, 1, deptCount)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	req := authDTO.RegisterRequest{Email: "john@school.edu", Password: "password123", Name: "John Doe"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterAdminSkipsProfile(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(authDTO.RegisterRequest{
		Email:    "admin@school.edu",
		Password: "password123",
		Name:     "System Admin",
		Role:     "ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, user.Role)

	var count int64
	require.NoError(t, svc.DB.Model(&userModel.TeacherProfileModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(authDTO.RegisterRequest{
		Email: "john@school.edu", Password: "password123", Name: "John Doe",
	})
	require.NoError(t, err)

	resp, err := svc.Login(authDTO.LoginRequest{Email: "john@school.edu", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", resp.User.Name)
	assert.Equal(t, "TEACHER", resp.User.Role)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "john@school.edu", claims["email"])
	assert.Equal(t, "TEACHER", claims["role"])
	assert.Equal(t, "John Doe", claims["name"])
	assert.Equal(t, resp.User.ID.String(), claims["id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(authDTO.RegisterRequest{
		Email: "john@school.edu", Password: "password123", Name: "John Doe",
	})
	require.NoError(t, err)

	_, err = svc.Login(authDTO.LoginRequest{Email: "john@school.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(authDTO.LoginRequest{Email: "nobody@school.edu", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(authDTO.RegisterRequest{
		Email: "john@school.edu", Password: "password123", Name: "John Doe",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, "nope", "newpassword1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(user.ID, "password123", "newpassword1"))

	_, err = svc.Login(authDTO.LoginRequest{Email: "john@school.edu", Password: "newpassword1"})
	require.NoError(t, err)
	_, err = svc.Login(authDTO.LoginRequest{Email: "john@school.edu", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(uuid.New(), "x", "newpassword1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
