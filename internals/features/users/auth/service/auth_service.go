package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"servicecredit_backend/internals/configs"
	"servicecredit_backend/internals/constants"
	referenceService "servicecredit_backend/internals/features/school/reference/service"
	authDTO "servicecredit_backend/internals/features/users/auth/dto"
	userDTO "servicecredit_backend/internals/features/users/user/dto"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password incorrect")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{DB: db} }

// Register creates a user and, for teachers with a department name, the
// teacher profile in the same transaction. The department is created on the
// fly when it does not exist yet.
func (s *AuthService) Register(req authDTO.RegisterRequest) (*userModel.UserModel, error) {
	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	role := constants.RoleTeacher
	if r, ok := constants.ParseRole(req.Role); ok {
		role = r
	}

	user := userModel.UserModel{
		Email:    req.Email,
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if user.Role == constants.RoleTeacher && req.Department != "" {
			dept, err := referenceService.EnsureDepartment(tx, req.Department, "")
			if err != nil {
				return err
			}
			profile := userModel.TeacherProfileModel{
				UserID:       user.ID,
				DepartmentID: &dept.ID,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login checks credentials and issues a signed 24h access token carrying
// id, email, role and name.
func (s *AuthService) Login(req authDTO.LoginRequest) (*authDTO.LoginResponse, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := signAccessToken(&user)
	if err != nil {
		return nil, err
	}
	return &authDTO.LoginResponse{
		Token: token,
		User:  userDTO.FromModel(&user),
	}, nil
}

// ChangePassword verifies the current password before replacing the hash.
func (s *AuthService) ChangePassword(userID uuid.UUID, current, next string) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.CheckPassword(current) {
		return ErrWrongPassword
	}
	if err := user.SetPassword(next); err != nil {
		return err
	}
	return s.DB.Model(&user).Update("password", user.Password).Error
}

func signAccessToken(u *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":    u.ID.String(),
		"email": u.Email,
		"role":  u.Role.String(),
		"name":  u.Name,
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// isUniqueViolation detects a postgres 23505 raced past the pre-check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
