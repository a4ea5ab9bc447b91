package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"fatura-web/internal/config"
	"fatura-web/internal/middleware"
	"fatura-web/internal/models"
	"fatura-web/internal/repository"
	"fatura-web/internal/service"
)

func Setup(app *fiber.App, db *sqlx.DB, redis *redis.Client, cfg *config.Config) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.AppName,
		})
	})

	store := session.New()

	// Web routes (HTML)
	web := app.Group("")
	setupWebRoutes(web, db, store, cfg)

	// API routes (JSON)
	api := app.Group("/api/v1")
	SetupAPIRoutes(api, db, redis, cfg)
}

func setupWebRoutes(router fiber.Router, db *sqlx.DB, store *session.Store, cfg *config.Config) {
	authService := service.NewAuthService(repository.NewUserRepository(db), cfg)

	// Authentication pages
	router.Get("/login", middleware.GuestMiddleware(store), func(c *fiber.Ctx) error {
		return c.Render("auth/login", fiber.Map{
			"Title": "Login",
		})
	})
	router.Post("/login", middleware.GuestMiddleware(store), func(c *fiber.Ctx) error {
		req := struct {
			Username string `form:"username"`
			Password string `form:"password"`
		}{}
		if err := c.BodyParser(&req); err != nil {
			return c.Render("auth/login", fiber.Map{"Title": "Login", "Error": "Invalid form data"})
		}
		_, err := authService.WebLogin(models.LoginRequest{Username: req.Username, Password: req.Password}, c, store)
		if err != nil {
			return c.Render("auth/login", fiber.Map{"Title": "Login", "Error": err.Error()})
		}
		return c.Redirect("/")
	})
	router.Get("/register", middleware.GuestMiddleware(store), func(c *fiber.Ctx) error {
		return c.Render("auth/register", fiber.Map{
			"Title": "Register",
		})
	})
	router.Post("/logout", func(c *fiber.Ctx) error {
		_ = authService.WebLogout(c, store)
		return c.Redirect("/login")
	})

	// Protected pages
	protected := router.Group("", middleware.WebAuthMiddleware(store))
	protected.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title": "Dashboard",
		})
	})
	protected.Get("/imports", func(c *fiber.Ctx) error {
		return c.Render("imports/index", fiber.Map{
			"Title": "Import Sessions",
		})
	})
	protected.Get("/imports/new", func(c *fiber.Ctx) error {
		return c.Render("imports/new", fiber.Map{
			"Title": "New Import",
		})
	})
	protected.Get("/imports/:code", func(c *fiber.Ctx) error {
		return c.Render("imports/detail", fiber.Map{
			"Title": "Import Detail",
			"Code":  c.Params("code"),
		})
	})
}
