package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"innovtech/internal/config"
	"innovtech/internal/http/handlers"
	"innovtech/internal/repos"
)

// newTestApp wires the full route table over a fresh seeded in-memory DB.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", BcryptCost: bcrypt.MinCost}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api")
	auth := api.Group("/auth")
	auth.Post("/login", deps.AuthH.Login)
	auth.Post("/signup", deps.AuthH.Signup)
	auth.Post("/logout", deps.AuthH.Logout)
	auth.Get("/me", deps.AuthH.Me)

	api.Get("/produits", deps.Product.List)
	api.Get("/produits/:id", deps.Product.Get)
	api.Get("/categories", deps.Product.Categories)
	api.Post("/orders", handlers.RequireUser(deps.Auth), deps.Order.Place)

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

	return app, db
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// login authenticates against the seeded accounts and returns the sid cookie.
func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	req := jsonReq("POST", "/api/auth/login", `{"email":"`+email+`","password":"`+password+`"}`)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, resp.StatusCode)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing after login")
	}
	return sid
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("decode %q: %v", string(b), err)
	}
}
