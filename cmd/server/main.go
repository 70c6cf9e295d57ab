package main

import (
	"log"
	"strings"

	"carta-backend/internal/audit"
	"carta-backend/internal/auth"
	"carta-backend/internal/catalog"
	"carta-backend/internal/config"
	"carta-backend/internal/database"
	"carta-backend/internal/workspace"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	productStore := catalog.NewProductStore(db)
	complementTypeStore := catalog.NewComplementTypeStore(db)
	complementStore := catalog.NewComplementStore(db)
	recorder := audit.NewRecorder(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	v1 := app.Group("/api/v1")

	// Public auth
	v1.Post("/auth/register", auth.RegisterHandler(db))
	v1.Post("/auth/login", auth.LoginHandler(cfg, db))
	v1.Post("/auth/workspaces", auth.WorkspacesHandler(db))

	// Protected
	protected := v1.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Catalog
	protected.Get("/products", catalog.ListProductsHandler(productStore))
	protected.Get("/products/:id", catalog.GetProductHandler(productStore))
	protected.Post("/products", catalog.CreateProductHandler(productStore, recorder))
	protected.Patch("/products/:id", catalog.UpdateProductHandler(productStore, recorder))

	protected.Post("/products/:id/complement-types", catalog.AddComplementTypeHandler(productStore, recorder))
	protected.Patch("/products/:id/complement-types/:complementTypeId", catalog.UpdateComplementTypeHandler(productStore, complementTypeStore, recorder))

	protected.Post("/products/:id/complement-types/:complementTypeId/complements", catalog.CreateComplementHandler(productStore, complementTypeStore, complementStore, recorder))
	protected.Patch("/products/:id/complement-types/:complementTypeId/complements/:complementId", catalog.UpdateComplementHandler(productStore, complementTypeStore, complementStore, recorder))

	// Workspace management
	protected.Post("/workspaces", workspace.CreateWorkspaceHandler(db))
	protected.Get("/workspaces/:id", workspace.GetWorkspaceHandler(db))

	// Audit trail
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(db))

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
