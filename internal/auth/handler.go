package auth

import (
	"errors"
	"strings"
	"time"

	"carta-backend/internal/config"
	"carta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	WorkspaceID uint   `json:"workspace_id"`
}

type WorkspacesRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type WorkspaceResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func newWorkspaceResponse(w models.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

// POST /api/v1/auth/register
func RegisterHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.FirstName = strings.TrimSpace(body.FirstName)
		body.LastName = strings.TrimSpace(body.LastName)

		if body.Email == "" || body.Password == "" || body.FirstName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email, first name and password are required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password could not be hashed")
		}

		user := models.User{
			Email:        body.Email,
			PasswordHash: string(hash),
			FirstName:    body.FirstName,
			LastName:     body.LastName,
		}

		if err := db.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "User could not be created")
		}

		return c.JSON(fiber.Map{"data": newUserResponse(user)})
	}
}

// POST /api/v1/auth/login
// Issues a token only when the password matches and the user is a member
// of the requested workspace.
func LoginHandler(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := db.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credentials are not valid")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credentials are not valid")
		}

		var workspace models.Workspace
		err := db.
			Joins("JOIN user_workspaces ON user_workspaces.workspace_id = workspaces.id").
			Where("workspaces.id = ? AND user_workspaces.user_id = ?", body.WorkspaceID, user.ID).
			First(&workspace).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Credentials are not valid")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
		}

		token, err := GenerateToken(cfg.JWTSecret, user.ID, workspace.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be generated")
		}

		return c.JSON(fiber.Map{"data": fiber.Map{
			"access_token": token,
			"user":         newUserResponse(user),
		}})
	}
}

// POST /api/v1/auth/workspaces
// Password-gated listing of the workspaces the user belongs to, used by
// the login screen before a workspace is picked.
func WorkspacesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WorkspacesRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := db.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credentials are not valid")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credentials are not valid")
		}

		var workspaces []models.Workspace
		err := db.
			Joins("JOIN user_workspaces ON user_workspaces.workspace_id = workspaces.id").
			Where("user_workspaces.user_id = ?", user.ID).
			Order("workspaces.id asc").
			Find(&workspaces).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Workspaces could not be listed")
		}

		res := make([]WorkspaceResponse, 0, len(workspaces))
		for _, w := range workspaces {
			res = append(res, newWorkspaceResponse(w))
		}
		return c.JSON(fiber.Map{"data": res})
	}
}
