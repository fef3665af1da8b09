package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"servicecredit_backend/internals/configs"
	userModel "servicecredit_backend/internals/features/users/user/model"
	helper "servicecredit_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the identity claims in
// Fiber locals for the handlers downstream.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access denied: no token provided")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		id, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)
		if id == "" || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Token may outlive a deactivation; check the account is still active.
		var u userModel.UserModel
		if err := db.Select("id", "is_active").First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
			}
			log.Println("[ERROR] auth user lookup:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !u.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
		}

		c.Locals(helper.LocUserID, id)
		c.Locals(helper.LocUserRole, role)
		c.Locals(helper.LocUserName, name)
		return c.Next()
	}
}
