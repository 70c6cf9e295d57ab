package workspace

import (
	"errors"
	"strings"
	"time"

	"carta-backend/internal/auth"
	"carta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkspaceResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CreateWorkspaceRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
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

// POST /api/v1/workspaces
// Creates a workspace with the caller as its first member.
func CreateWorkspaceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWorkspaceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		workspace := models.Workspace{
			Name:    body.Name,
			Address: strings.TrimSpace(body.Address),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&workspace).Error; err != nil {
				return err
			}
			membership := models.UserWorkspace{
				UserID:      auth.UserID(c),
				WorkspaceID: workspace.ID,
			}
			return tx.Create(&membership).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Workspace could not be created")
		}

		return c.JSON(fiber.Map{"data": newWorkspaceResponse(workspace)})
	}
}

// GET /api/v1/workspaces/:id
// Only workspaces the caller belongs to are visible.
func GetWorkspaceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id parameter")
		}

		var workspace models.Workspace
		err = db.
			Joins("JOIN user_workspaces ON user_workspaces.workspace_id = workspaces.id").
			Where("workspaces.id = ? AND user_workspaces.user_id = ?", id, auth.UserID(c)).
			First(&workspace).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Workspace not found")
			}
			return err
		}

		return c.JSON(fiber.Map{"data": newWorkspaceResponse(workspace)})
	}
}
