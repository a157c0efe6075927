package authapimodels

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"approval-flow-backend/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignUpData struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Role      models.UserRole `json:"role"`
	ManagerID string          `json:"manager_id"`
}

func (d SignUpData) Validate() error {
	missing := []string{}
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if d.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return errors.Wrap(models.ErrInvalidInput, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	if !emailRegex.MatchString(d.Email) {
		return errors.Wrap(models.ErrInvalidInput, "invalid email format")
	}
	if !d.Role.IsValid() {
		return errors.Wrap(models.ErrInvalidInput, "invalid role")
	}
	if d.Role == models.UserRoleEmployee && d.ManagerID == "" {
		return errors.Wrap(models.ErrInvalidInput, "employee must have a manager")
	}
	if len(d.Password) < 6 {
		return errors.Wrap(models.ErrInvalidInput, "password must be at least 6 characters")
	}
	return nil
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginData) Validate() error {
	missing := []string{}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return errors.Wrap(models.ErrInvalidInput, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}

func (d RefreshData) Validate() error {
	if d.RefreshToken == "" {
		return errors.Wrap(models.ErrInvalidInput, "refresh token is required")
	}
	return nil
}

type JWTResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
