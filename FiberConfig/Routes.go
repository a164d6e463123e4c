package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"DailyTodo/Controllers"
	"DailyTodo/Models"
	"DailyTodo/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	pageController := Controllers.NewPageController(db)
	taskController := Controllers.NewTaskController(db)
	templateController := Controllers.NewTemplateController(db)
	dashboardController := Controllers.NewDashboardController(db)

	// Rendered pages
	app.Get("/", pageController.Index)
	app.Get("/dashboard", pageController.Dashboard)

	// API group
	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Daily task routes
	tasks := api.Group("/tasks")
	tasks.Get("/today", taskController.Today)
	tasks.Post("/:id/complete", taskController.Complete)

	// Template routes
	templates := api.Group("/templates")
	templates.Get("/", templateController.GetTemplates)
	templates.Post("/", templateController.CreateTemplate)
	templates.Post("/:id/toggle", templateController.ToggleTemplate)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", dashboardController.Summary)
	dashboard.Get("/export", dashboardController.Export)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       300,
	}))
	// Self-heal the current day at the top of every request
	app.Use(middleware.EnsureDay(Models.DB))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
