package catalog

import (
	"fmt"
	"strings"

	"carta-backend/internal/audit"
	"carta-backend/internal/auth"
	"carta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateComplementRequest struct {
	Name       string `json:"name"`
	IsDisabled bool   `json:"isDisabled"`
	Price      int64  `json:"price"`
}

type UpdateComplementRequest struct {
	Name       *string `json:"name"`
	IsDisabled *bool   `json:"isDisabled"`
	Price      *int64  `json:"price"`
}

// POST /api/v1/products/:id/complement-types/:complementTypeId/complements
func CreateComplementHandler(products *ProductStore, types *ComplementTypeStore, complements *ComplementStore, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := productIDParam(c, "id")
		if err != nil {
			return err
		}
		complementTypeID, err := productIDParam(c, "complementTypeId")
		if err != nil {
			return err
		}

		var body CreateComplementRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
		}

		workspaceID := auth.WorkspaceID(c)

		// The group must be in the caller's workspace before anything is
		// written under it.
		if _, err := types.Fetch(workspaceID, complementTypeID); err != nil {
			return storeError(err, "Complement type not found")
		}

		complement, err := complements.Create(complementTypeID, CreateComplementParams{
			Name:       body.Name,
			IsDisabled: body.IsDisabled,
			Price:      body.Price,
		})
		if err != nil {
			return storeError(err, "Complement type not found")
		}

		recorder.Record(audit.LogOptions{
			WorkspaceID: workspaceID,
			UserID:      auth.UserID(c),
			EntityType:  "complement",
			EntityID:    complement.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Complement %q created in group %d", complement.Name, complementTypeID),
		})

		product, err := products.Fetch(workspaceID, productID)
		if err != nil {
			return storeError(err, "Product not found")
		}
		return c.JSON(fiber.Map{"data": product})
	}
}

// PATCH /api/v1/products/:id/complement-types/:complementTypeId/complements/:complementId
func UpdateComplementHandler(products *ProductStore, types *ComplementTypeStore, complements *ComplementStore, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := productIDParam(c, "id")
		if err != nil {
			return err
		}
		complementTypeID, err := productIDParam(c, "complementTypeId")
		if err != nil {
			return err
		}
		complementID, err := productIDParam(c, "complementId")
		if err != nil {
			return err
		}

		var body UpdateComplementRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			body.Name = &name
		}
		if body.Price != nil && *body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
		}

		workspaceID := auth.WorkspaceID(c)

		if _, err := types.Fetch(workspaceID, complementTypeID); err != nil {
			return storeError(err, "Complement type not found")
		}

		complement, err := complements.Update(complementTypeID, complementID, UpdateComplementParams{
			Name:       body.Name,
			IsDisabled: body.IsDisabled,
			Price:      body.Price,
		})
		if err != nil {
			return storeError(err, "Complement not found")
		}

		recorder.Record(audit.LogOptions{
			WorkspaceID: workspaceID,
			UserID:      auth.UserID(c),
			EntityType:  "complement",
			EntityID:    complement.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Complement %d updated", complement.ID),
		})

		product, err := products.Fetch(workspaceID, productID)
		if err != nil {
			return storeError(err, "Product not found")
		}
		return c.JSON(fiber.Map{"data": product})
	}
}
