package catalog

import (
	"errors"
	"fmt"
	"strings"

	"carta-backend/internal/audit"
	"carta-backend/internal/auth"
	"carta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           int64   `json:"price"`
	Content         *string `json:"content"`
	ImageURL        *string `json:"imageUrl"`
	ParentProductID *uint   `json:"parentProductId"`
	Type            *string `json:"type"`
}

type UpdateProductRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Price           *int64  `json:"price"`
	Content         *string `json:"content"`
	ImageURL        *string `json:"imageUrl"`
	ParentProductID *uint   `json:"parentProductId"`
	Type            *string `json:"type"`
}

// storeError maps store failures onto HTTP statuses. Unknown errors pass
// through to the central error handler, which logs and redacts them.
func storeError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, ErrSelfParent):
		return fiber.NewError(fiber.StatusBadRequest, "Product cannot be its own parent")
	default:
		return err
	}
}

func productIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id parameter")
	}
	return uint(id), nil
}

// GET /api/v1/products
func ListProductsHandler(store *ProductStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := store.List(auth.WorkspaceID(c))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": products})
	}
}

// GET /api/v1/products/:id
func GetProductHandler(store *ProductStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := productIDParam(c, "id")
		if err != nil {
			return err
		}

		product, err := store.Fetch(auth.WorkspaceID(c), productID)
		if err != nil {
			return storeError(err, "Product not found")
		}
		return c.JSON(fiber.Map{"data": product})
	}
}

// POST /api/v1/products
func CreateProductHandler(store *ProductStore, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Description = strings.TrimSpace(body.Description)

		if body.Name == "" || body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and description are required")
		}
		if body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price must be positive")
		}

		workspaceID := auth.WorkspaceID(c)

		params := CreateProductParams{
			Name:            body.Name,
			Description:     body.Description,
			Price:           body.Price,
			Content:         body.Content,
			ImageURL:        body.ImageURL,
			ParentProductID: body.ParentProductID,
		}
		if body.Type != nil {
			params.Type = *body.Type
		}

		product, err := store.Create(workspaceID, params)
		if err != nil {
			return storeError(err, "Parent product not found")
		}

		recorder.Record(audit.LogOptions{
			WorkspaceID: workspaceID,
			UserID:      auth.UserID(c),
			EntityType:  "product",
			EntityID:    product.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Product %q created", product.Name),
		})

		return c.JSON(fiber.Map{"data": product})
	}
}

// PATCH /api/v1/products/:id
func UpdateProductHandler(store *ProductStore, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := productIDParam(c, "id")
		if err != nil {
			return err
		}

		var body UpdateProductRequest
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
		if body.Description != nil {
			description := strings.TrimSpace(*body.Description)
			if description == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Description cannot be empty")
			}
			body.Description = &description
		}
		if body.Price != nil && *body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price must be positive")
		}

		workspaceID := auth.WorkspaceID(c)

		product, err := store.Update(workspaceID, productID, UpdateProductParams{
			Name:            body.Name,
			Description:     body.Description,
			Price:           body.Price,
			Content:         body.Content,
			ImageURL:        body.ImageURL,
			ParentProductID: body.ParentProductID,
			Type:            body.Type,
		})
		if err != nil {
			return storeError(err, "Product not found")
		}

		recorder.Record(audit.LogOptions{
			WorkspaceID: workspaceID,
			UserID:      auth.UserID(c),
			EntityType:  "product",
			EntityID:    product.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Product %q updated", product.Name),
		})

		return c.JSON(fiber.Map{"data": product})
	}
}
