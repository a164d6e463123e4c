package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DailyTodo/Models"
	"DailyTodo/Services"
)

// PageController renders the server-side HTML pages
type PageController struct {
	DB *gorm.DB
}

// NewPageController creates a new PageController
func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

// Index renders the home page with today's tasks and progress
func (c *PageController) Index(ctx *fiber.Ctx) error {
	tasks, err := Services.GetTodayTasks(c.DB)
	if err != nil {
		return errorJSON(ctx, err)
	}
	progress, err := Services.TodayProgress(c.DB)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var templates []Models.TaskTemplate
	if err := c.DB.Order("name").Find(&templates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve templates"})
	}

	return ctx.Render("index", fiber.Map{
		"Tasks":     tasks,
		"Progress":  progress,
		"Templates": templates,
	})
}

// Dashboard renders the stats page
func (c *PageController) Dashboard(ctx *fiber.Ctx) error {
	data, err := Services.GetDashboardData(c.DB)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.Render("dashboard", fiber.Map{"Data": data})
}
