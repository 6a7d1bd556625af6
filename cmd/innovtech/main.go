package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"innovtech/internal/config"
	"innovtech/internal/http/handlers"
	applog "innovtech/internal/log"
	"innovtech/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log the detail, return a generic body; nothing internal
			// reaches the client.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthH.Login)
	auth.Post("/signup", deps.AuthH.Signup)
	auth.Post("/logout", deps.AuthH.Logout)
	auth.Get("/me", deps.AuthH.Me)

	// Public catalog
	api.Get("/produits", deps.Product.List)
	api.Get("/produits/:id", deps.Product.Get)
	api.Get("/categories", deps.Product.Categories)

	// Checkout
	api.Post("/orders", handlers.RequireUser(deps.Auth), deps.Order.Place)

	// Admin back-office, gated server-side on the verified session
	admin := api.Group("/admin", handlers.RequireAdmin(deps.Auth))
	admin.Get("/products", deps.Admin.ListProducts)
	admin.Post("/products", deps.Admin.CreateProduct)
	admin.Put("/products/:id", deps.Admin.UpdateProduct)
	admin.Delete("/products/:id", deps.Admin.DeleteProduct)
	admin.Get("/users", deps.Admin.ListUsers)
	admin.Put("/users/:id", deps.Admin.UpdateUser)
	admin.Delete("/users/:id", deps.Admin.DeleteUser)
	admin.Get("/sales", deps.Admin.ListSales)
	admin.Get("/analytics", deps.Admin.AnalyticsSummary)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
