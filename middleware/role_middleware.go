package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "approval-flow-backend/lib/utils/auth-utils"
	"approval-flow-backend/models"
	apimodels "approval-flow-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func ManagerRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleManager {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("only managers can access this"))
		}
		return ctx.Next()
	}
}
