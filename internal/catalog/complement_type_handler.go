package catalog

import (
	"fmt"
	"strings"

	"carta-backend/internal/audit"
	"carta-backend/internal/auth"
	"carta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateComplementTypeRequest struct {
	Name          string `json:"name"`
	Required      bool   `json:"required"`
	MaxSelectable int    `json:"maxSelectable"`
}

type UpdateComplementTypeRequest struct {
	Name          *string `json:"name"`
	Required      *bool   `json:"required"`
	MaxSelectable *int    `json:"maxSelectable"`
}

// POST /api/v1/products/:id/complement-types
// Creates a complement group and links it to the product in one call,
// answering with the product's refreshed tree.
func AddComplementTypeHandler(products *ProductStore, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := productIDParam(c, "id")
		if err != nil {
			return err
		}

		var body CreateComplementTypeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if body.MaxSelectable <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "maxSelectable must be positive")
		}

		workspaceID := auth.WorkspaceID(c)

		product, err := products.AddComplementType(workspaceID, productID, CreateComplementTypeParams{
			Name:          body.Name,
			Required:      body.Required,
			MaxSelectable: body.MaxSelectable,
		})
		if err != nil {
			return storeError(err, "Product not found")
		}

		recorder.Record(audit.LogOptions{
			WorkspaceID: workspaceID,
			UserID:      auth.UserID(c),
			EntityType:  "complement_type",
			EntityID:    productID,
			Action:      models.AuditActionLink,
			Description: fmt.Sprintf("Complement type %q added to product %d", body.Name, productID),
		})

		return c.JSON(fiber.Map{"data": product})
	}
}

// PATCH /api/v1/products/:id/complement-types/:complementTypeId
func UpdateComplementTypeHandler(products *ProductStore, types *ComplementTypeStore, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := productIDParam(c, "id")
		if err != nil {
			return err
		}
		complementTypeID, err := productIDParam(c, "complementTypeId")
		if err != nil {
			return err
		}

		var body UpdateComplementTypeRequest
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
		if body.MaxSelectable != nil && *body.MaxSelectable <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "maxSelectable must be positive")
		}

		workspaceID := auth.WorkspaceID(c)

		if _, err := types.Update(workspaceID, complementTypeID, UpdateComplementTypeParams{
			Name:          body.Name,
			Required:      body.Required,
			MaxSelectable: body.MaxSelectable,
		}); err != nil {
			return storeError(err, "Complement type not found")
		}

		recorder.Record(audit.LogOptions{
			WorkspaceID: workspaceID,
			UserID:      auth.UserID(c),
			EntityType:  "complement_type",
			EntityID:    complementTypeID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Complement type %d updated", complementTypeID),
		})

		product, err := products.Fetch(workspaceID, productID)
		if err != nil {
			return storeError(err, "Product not found")
		}
		return c.JSON(fiber.Map{"data": product})
	}
}
